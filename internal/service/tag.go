// internal/service/tag.go
package service

import (
	"context"
	"fmt"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TagService struct {
	repo          repository.TagRepositoryIface
	candidateRepo repository.CandidateRepositoryIface
	validate      *validator.Validate
}

func NewTagService(repo repository.TagRepositoryIface, candidateRepo repository.CandidateRepositoryIface) *TagService {
	return &TagService{
		repo:          repo,
		candidateRepo: candidateRepo,
		validate:      validator.New(),
	}
}

type TagInput struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

func (s *TagService) List(ctx context.Context, p authz.Principal) ([]*model.Tag, error) {
	return s.repo.FindAll(ctx, p)
}

func (s *TagService) Create(ctx context.Context, p authz.Principal, input TagInput) (*model.Tag, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if p.OrganizationID == nil {
		return nil, domain.ErrNoOrganization
	}

	tag := &model.Tag{
		OrganizationID: *p.OrganizationID,
		Name:           input.Name,
	}
	if input.Color != "" {
		tag.Color = input.Color
	}

	if err := s.repo.Create(ctx, p, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	return s.repo.Delete(ctx, p, id)
}

// Assign attaches a tag to a candidate. The candidate lookup goes through
// the org scope, so a candidate id from another tenant reads as not found.
func (s *TagService) Assign(ctx context.Context, p authz.Principal, candidateID, tagID uuid.UUID) error {
	if _, err := s.candidateRepo.FindByID(ctx, p, candidateID); err != nil {
		return err
	}
	return s.repo.Assign(ctx, p, candidateID, tagID)
}

// Unassign removes a tag from a candidate, with the same scoped candidate
// lookup as Assign.
func (s *TagService) Unassign(ctx context.Context, p authz.Principal, candidateID, tagID uuid.UUID) error {
	if _, err := s.candidateRepo.FindByID(ctx, p, candidateID); err != nil {
		return err
	}
	return s.repo.Unassign(ctx, p, candidateID, tagID)
}
