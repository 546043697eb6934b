package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"synthlab/internal/models"
	"synthlab/internal/repository"

	"github.com/shopspring/decimal"
)

// SynthesizeService manages synthesize records and their tag and chemical
// component association sets.
type SynthesizeService struct {
	repo     repository.SynthesizeRepository
	tagRepo  repository.TagRepository
	compRepo repository.ChemComponentRepository
}

// NewSynthesizeService returns a new SynthesizeService.
func NewSynthesizeService(repo repository.SynthesizeRepository, tagRepo repository.TagRepository, compRepo repository.ChemComponentRepository) *SynthesizeService {
	return &SynthesizeService{repo: repo, tagRepo: tagRepo, compRepo: compRepo}
}

// SynthesizeInput carries the full writable field set of a record. Used for
// create and full-replace updates; association ID lists may be empty.
type SynthesizeInput struct {
	Title       string
	TimeYears   int
	Chance      decimal.Decimal
	Link        string
	TagIDs      []uint
	ChemCompIDs []uint
}

// SynthesizePatch carries a partial update. Nil fields are left unchanged;
// a non-nil empty ID list clears that association set.
type SynthesizePatch struct {
	Title       *string
	TimeYears   *int
	Chance      *decimal.Decimal
	Link        *string
	TagIDs      *[]uint
	ChemCompIDs *[]uint
}

// List returns the requester's records, most recent first, optionally
// narrowed to those referencing any of the given tag or component IDs.
func (s *SynthesizeService) List(ctx context.Context, userID uint, tagIDs, chemCompIDs []uint) ([]models.Synthesize, error) {
	return s.repo.ListOwned(ctx, userID, tagIDs, chemCompIDs)
}

// Get returns one of the requester's records with associations loaded.
func (s *SynthesizeService) Get(ctx context.Context, userID, id uint) (*models.Synthesize, error) {
	return s.repo.GetOwned(ctx, userID, id)
}

// Create persists a new record owned by the requester. Every referenced tag
// and component ID must resolve or the whole request is rejected.
func (s *SynthesizeService) Create(ctx context.Context, userID uint, in SynthesizeInput) (*models.Synthesize, error) {
	if err := validateSynthesizeFields(in.Title, in.TimeYears); err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}
	comps, err := s.resolveChemComps(ctx, in.ChemCompIDs)
	if err != nil {
		return nil, err
	}

	rec := &models.Synthesize{
		Title:          strings.TrimSpace(in.Title),
		UserID:         userID,
		TimeYears:      in.TimeYears,
		Chance:         in.Chance,
		Link:           in.Link,
		Tags:           tags,
		ChemComponents: comps,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Replace overwrites every writable field of an owned record. Association
// sets not present in the input are cleared, matching full-update semantics.
func (s *SynthesizeService) Replace(ctx context.Context, userID, id uint, in SynthesizeInput) (*models.Synthesize, error) {
	rec, err := s.repo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := validateSynthesizeFields(in.Title, in.TimeYears); err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}
	comps, err := s.resolveChemComps(ctx, in.ChemCompIDs)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	if comps == nil {
		comps = []models.ChemComponent{}
	}

	rec.Title = strings.TrimSpace(in.Title)
	rec.TimeYears = in.TimeYears
	rec.Chance = in.Chance
	rec.Link = in.Link

	if err := s.repo.Update(ctx, rec, &tags, &comps); err != nil {
		return nil, err
	}
	return rec, nil
}

// Patch updates only the supplied fields of an owned record. A nil
// association list leaves the stored set untouched; an empty one clears it.
func (s *SynthesizeService) Patch(ctx context.Context, userID, id uint, in SynthesizePatch) (*models.Synthesize, error) {
	rec, err := s.repo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, models.NewValidationError("Title must not be blank")
		}
		rec.Title = title
	}
	if in.TimeYears != nil {
		if *in.TimeYears < 0 {
			return nil, models.NewValidationError("time_years must not be negative")
		}
		rec.TimeYears = *in.TimeYears
	}
	if in.Chance != nil {
		rec.Chance = *in.Chance
	}
	if in.Link != nil {
		rec.Link = *in.Link
	}

	var tags *[]models.Tag
	if in.TagIDs != nil {
		resolved, err := s.resolveTags(ctx, *in.TagIDs)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			resolved = []models.Tag{}
		}
		tags = &resolved
	}
	var comps *[]models.ChemComponent
	if in.ChemCompIDs != nil {
		resolved, err := s.resolveChemComps(ctx, *in.ChemCompIDs)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			resolved = []models.ChemComponent{}
		}
		comps = &resolved
	}

	if err := s.repo.Update(ctx, rec, tags, comps); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes an owned record and its association rows.
func (s *SynthesizeService) Delete(ctx context.Context, userID, id uint) error {
	return s.repo.Delete(ctx, userID, id)
}

func validateSynthesizeFields(title string, timeYears int) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("Title must not be blank")
	}
	if timeYears < 0 {
		return models.NewValidationError("time_years must not be negative")
	}
	return nil
}

func (s *SynthesizeService) resolveTags(ctx context.Context, ids []uint) ([]models.Tag, error) {
	ids = dedupeIDs(ids)
	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		found := make(map[uint]bool, len(tags))
		for _, t := range tags {
			found[t.ID] = true
		}
		return nil, models.NewValidationError(fmt.Sprintf("Unknown tag ids: %v", missingIDs(ids, found)))
	}
	return tags, nil
}

func (s *SynthesizeService) resolveChemComps(ctx context.Context, ids []uint) ([]models.ChemComponent, error) {
	ids = dedupeIDs(ids)
	comps, err := s.compRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(comps) != len(ids) {
		found := make(map[uint]bool, len(comps))
		for _, c := range comps {
			found[c.ID] = true
		}
		return nil, models.NewValidationError(fmt.Sprintf("Unknown chemcomp ids: %v", missingIDs(ids, found)))
	}
	return comps, nil
}

func dedupeIDs(ids []uint) []uint {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func missingIDs(ids []uint, found map[uint]bool) []uint {
	var missing []uint
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
