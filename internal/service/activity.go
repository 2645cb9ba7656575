// internal/service/activity.go
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

type ActivityService struct {
	repo          repository.ActivityRepositoryIface
	candidateRepo repository.CandidateRepositoryIface
	validate      *validator.Validate
}

func NewActivityService(repo repository.ActivityRepositoryIface, candidateRepo repository.CandidateRepositoryIface) *ActivityService {
	return &ActivityService{
		repo:          repo,
		candidateRepo: candidateRepo,
		validate:      validator.New(),
	}
}

type ActivityInput struct {
	Type     string        `json:"type" validate:"required"`
	Metadata model.JSONMap `json:"metadata"`
}

// Record appends an activity for a candidate. The candidate lookup runs
// under the caller's scope first, so logging against another tenant's
// candidate fails as not-found.
func (s *ActivityService) Record(ctx context.Context, p authz.Principal, candidateID uuid.UUID, input ActivityInput) (*model.Activity, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	candidate, err := s.candidateRepo.FindByID(ctx, p, candidateID)
	if err != nil {
		return nil, err
	}

	activity := &model.Activity{
		OrganizationID: candidate.OrganizationID,
		CandidateID:    candidate.ID,
		ActorID:        p.UserID,
		Type:           input.Type,
		Metadata:       input.Metadata,
	}

	if err := s.repo.Insert(ctx, p, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) ListForCandidate(ctx context.Context, p authz.Principal, candidateID uuid.UUID, limit int) ([]*model.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if _, err := s.candidateRepo.FindByID(ctx, p, candidateID); err != nil {
		return nil, err
	}
	return s.repo.ListByCandidate(ctx, p, candidateID, limit)
}
