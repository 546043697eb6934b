package repository

import (
	"context"
	"errors"

	"synthlab/internal/models"
	"synthlab/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SynthesizeRepository defines persistence operations for synthesize records.
// All lookups are ownership-scoped; a record owned by another user yields the
// same NOT_FOUND as a nonexistent one.
type SynthesizeRepository interface {
	ListOwned(ctx context.Context, userID uint, tagIDs, chemCompIDs []uint) ([]models.Synthesize, error)
	GetOwned(ctx context.Context, userID, id uint) (*models.Synthesize, error)
	Create(ctx context.Context, rec *models.Synthesize) error
	Update(ctx context.Context, rec *models.Synthesize, tags *[]models.Tag, comps *[]models.ChemComponent) error
	SetImage(ctx context.Context, rec *models.Synthesize, path string) error
	Delete(ctx context.Context, userID, id uint) error
}

type synthesizeRepository struct {
	db *gorm.DB
}

// NewSynthesizeRepository returns a new SynthesizeRepository implementation.
func NewSynthesizeRepository(db *gorm.DB) SynthesizeRepository {
	return &synthesizeRepository{db: db}
}

// ListOwned returns the requester's records, most recently created first.
// tagIDs and chemCompIDs narrow the result with OR semantics inside each set
// and AND semantics across the two sets.
func (r *synthesizeRepository) ListOwned(ctx context.Context, userID uint, tagIDs, chemCompIDs []uint) ([]models.Synthesize, error) {
	defer observability.TrackQuery("list", "synthesizes")()

	q := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("ChemComponents").
		Where("synthesizes.user_id = ?", userID).
		Order("synthesizes.id DESC")

	if len(tagIDs) > 0 {
		q = q.Joins("JOIN synthesize_tags ON synthesize_tags.synthesize_id = synthesizes.id").
			Where("synthesize_tags.tag_id IN ?", tagIDs)
	}
	if len(chemCompIDs) > 0 {
		q = q.Joins("JOIN synthesize_chemcomps ON synthesize_chemcomps.synthesize_id = synthesizes.id").
			Where("synthesize_chemcomps.chem_component_id IN ?", chemCompIDs)
	}
	if len(tagIDs) > 0 || len(chemCompIDs) > 0 {
		q = q.Distinct("synthesizes.*")
	}

	var recs []models.Synthesize
	if err := q.Find(&recs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recs, nil
}

func (r *synthesizeRepository) GetOwned(ctx context.Context, userID, id uint) (*models.Synthesize, error) {
	var rec models.Synthesize
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("ChemComponents").
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Synthesize", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &rec, nil
}

// Create persists rec and its association sets in one transaction so a
// mid-write failure cannot leave a record with partial associations.
func (r *synthesizeRepository) Create(ctx context.Context, rec *models.Synthesize) error {
	defer observability.TrackQuery("create", "synthesizes")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := rec.Tags
		comps := rec.ChemComponents
		rec.Tags = nil
		rec.ChemComponents = nil

		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(rec).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		if len(comps) > 0 {
			if err := tx.Model(rec).Association("ChemComponents").Append(&comps); err != nil {
				return err
			}
		}

		rec.Tags = tags
		rec.ChemComponents = comps
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update saves rec's scalar fields and, for each non-nil association set,
// replaces that set wholesale. A nil set leaves the stored associations
// untouched; an empty non-nil set clears them. All within one transaction.
func (r *synthesizeRepository) Update(ctx context.Context, rec *models.Synthesize, tags *[]models.Tag, comps *[]models.ChemComponent) error {
	defer observability.TrackQuery("update", "synthesizes")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(rec).Error; err != nil {
			return err
		}
		if tags != nil {
			if err := replaceAssociation(tx, rec, "Tags", *tags); err != nil {
				return err
			}
			rec.Tags = *tags
		}
		if comps != nil {
			if err := replaceAssociation(tx, rec, "ChemComponents", *comps); err != nil {
				return err
			}
			rec.ChemComponents = *comps
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func replaceAssociation[T any](tx *gorm.DB, rec *models.Synthesize, name string, values []T) error {
	assoc := tx.Model(rec).Association(name)
	if len(values) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(&values)
}

func (r *synthesizeRepository) SetImage(ctx context.Context, rec *models.Synthesize, path string) error {
	if err := r.db.WithContext(ctx).Model(rec).Update("image", path).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes an owned record and its join rows. The referenced tags and
// components themselves are left in place.
func (r *synthesizeRepository) Delete(ctx context.Context, userID, id uint) error {
	defer observability.TrackQuery("delete", "synthesizes")()

	rec, err := r.GetOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Select(clause.Associations).Delete(rec).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
