package repository

import (
	"context"

	"synthlab/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	ListOwned(ctx context.Context, userID uint, assignedOnly bool) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

var tagResource = ownedResource{
	table:     "tags",
	joinTable: "synthesize_tags",
	joinKey:   "tag_id",
	orderBy:   "name DESC",
}

func (r *tagRepository) ListOwned(ctx context.Context, userID uint, assignedOnly bool) ([]models.Tag, error) {
	return listOwned[models.Tag](ctx, r.db, userID, assignedOnly, tagResource)
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByIDs resolves tags by identifier without an ownership filter: a record
// may reference tags created by another user.
func (r *tagRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
