package service

import (
	"context"
	"strings"

	"synthlab/internal/models"
	"synthlab/internal/repository"
)

// CatalogService manages the two simple owned resources: tags and chemical
// components. Both expose list and create only; there is deliberately no
// update or delete.
type CatalogService struct {
	tagRepo  repository.TagRepository
	compRepo repository.ChemComponentRepository
}

// NewCatalogService returns a new CatalogService.
func NewCatalogService(tagRepo repository.TagRepository, compRepo repository.ChemComponentRepository) *CatalogService {
	return &CatalogService{tagRepo: tagRepo, compRepo: compRepo}
}

// ListTags returns the requester's tags, name-descending. assignedOnly limits
// the result to tags referenced by at least one of the requester's records.
func (s *CatalogService) ListTags(ctx context.Context, userID uint, assignedOnly bool) ([]models.Tag, error) {
	return s.tagRepo.ListOwned(ctx, userID, assignedOnly)
}

// CreateTag persists a new tag stamped with the requester as owner.
func (s *CatalogService) CreateTag(ctx context.Context, userID uint, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Name must not be blank")
	}
	tag := &models.Tag{Name: name, UserID: userID}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// ListChemComponents returns the requester's components, name-descending.
func (s *CatalogService) ListChemComponents(ctx context.Context, userID uint, assignedOnly bool) ([]models.ChemComponent, error) {
	return s.compRepo.ListOwned(ctx, userID, assignedOnly)
}

// CreateChemComponent persists a new component stamped with the requester as owner.
func (s *CatalogService) CreateChemComponent(ctx context.Context, userID uint, name string) (*models.ChemComponent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Name must not be blank")
	}
	comp := &models.ChemComponent{Name: name, UserID: userID}
	if err := s.compRepo.Create(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}
