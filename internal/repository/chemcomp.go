package repository

import (
	"context"

	"synthlab/internal/models"

	"gorm.io/gorm"
)

// ChemComponentRepository defines persistence operations for chemical components.
type ChemComponentRepository interface {
	ListOwned(ctx context.Context, userID uint, assignedOnly bool) ([]models.ChemComponent, error)
	Create(ctx context.Context, comp *models.ChemComponent) error
	GetByIDs(ctx context.Context, ids []uint) ([]models.ChemComponent, error)
}

type chemCompRepository struct {
	db *gorm.DB
}

// NewChemComponentRepository returns a new ChemComponentRepository implementation.
func NewChemComponentRepository(db *gorm.DB) ChemComponentRepository {
	return &chemCompRepository{db: db}
}

var chemCompResource = ownedResource{
	table:     "chem_components",
	joinTable: "synthesize_chemcomps",
	joinKey:   "chem_component_id",
	orderBy:   "name DESC",
}

func (r *chemCompRepository) ListOwned(ctx context.Context, userID uint, assignedOnly bool) ([]models.ChemComponent, error) {
	return listOwned[models.ChemComponent](ctx, r.db, userID, assignedOnly, chemCompResource)
}

func (r *chemCompRepository) Create(ctx context.Context, comp *models.ChemComponent) error {
	if err := r.db.WithContext(ctx).Create(comp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByIDs resolves components by identifier without an ownership filter.
func (r *chemCompRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.ChemComponent, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var comps []models.ChemComponent
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&comps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comps, nil
}
