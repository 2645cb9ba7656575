// internal/service/candidate.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CandidateService struct {
	repo         repository.CandidateRepositoryIface
	activityRepo repository.ActivityRepositoryIface
	validate     *validator.Validate
}

func NewCandidateService(repo repository.CandidateRepositoryIface, activityRepo repository.ActivityRepositoryIface) *CandidateService {
	return &CandidateService{
		repo:         repo,
		activityRepo: activityRepo,
		validate:     validator.New(),
	}
}

type CandidateInput struct {
	FirstName        string                 `json:"first_name" validate:"required"`
	LastName         string                 `json:"last_name"`
	Email            string                 `json:"email" validate:"omitempty,email"`
	Phone            string                 `json:"phone"`
	LinkedinURL      string                 `json:"linkedin_url" validate:"omitempty,url"`
	CurrentCompany   string                 `json:"current_company"`
	CurrentTitle     string                 `json:"current_title"`
	PastCompanies    []string               `json:"past_companies"`
	PastTitles       []string               `json:"past_titles"`
	RelationshipType model.RelationshipType `json:"relationship_type"`
	FunctionalRole   string                 `json:"functional_role"`
	LocationCategory string                 `json:"location_category"`
	IsActiveLooking  bool                   `json:"is_active_looking"`
	Compensation     model.JSONMap          `json:"compensation"`
	Visa             model.JSONMap          `json:"visa"`
	Notes            string                 `json:"notes"`
}

type SearchCandidatesInput struct {
	Filter repository.CandidateFilter
	Offset int
	Limit  int
}

type SearchCandidatesOutput struct {
	Candidates []*model.Candidate `json:"candidates"`
	Total      int64              `json:"total"`
}

func (s *CandidateService) Search(ctx context.Context, p authz.Principal, input SearchCandidatesInput) (*SearchCandidatesOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	candidates, total, err := s.repo.Search(ctx, p, input.Filter, input.Offset, limit)
	if err != nil {
		return nil, fmt.Errorf("searching candidates: %w", err)
	}
	return &SearchCandidatesOutput{Candidates: candidates, Total: total}, nil
}

func (s *CandidateService) Get(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Candidate, error) {
	return s.repo.FindByID(ctx, p, id)
}

func (s *CandidateService) Create(ctx context.Context, p authz.Principal, input CandidateInput) (*model.Candidate, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if p.OrganizationID == nil {
		return nil, domain.ErrNoOrganization
	}

	relationship := input.RelationshipType
	if relationship == "" {
		relationship = model.RelationshipCandidate
	}
	if !relationship.Valid() {
		return nil, domain.ErrInvalidRelationshipType
	}

	candidate := &model.Candidate{
		OrganizationID:   *p.OrganizationID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		LinkedinURL:      input.LinkedinURL,
		CurrentCompany:   input.CurrentCompany,
		CurrentTitle:     input.CurrentTitle,
		PastCompanies:    input.PastCompanies,
		PastTitles:       input.PastTitles,
		RelationshipType: relationship,
		FunctionalRole:   input.FunctionalRole,
		LocationCategory: input.LocationCategory,
		IsActiveLooking:  input.IsActiveLooking,
		Compensation:     input.Compensation,
		Visa:             input.Visa,
		Notes:            input.Notes,
		CreatedBy:        p.UserID,
		UpdatedBy:        p.UserID,
	}

	if err := s.repo.Create(ctx, p, candidate); err != nil {
		return nil, err
	}

	s.logChange(ctx, p, candidate.ID, "created")
	return candidate, nil
}

func (s *CandidateService) Update(ctx context.Context, p authz.Principal, id uuid.UUID, input CandidateInput) (*model.Candidate, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	candidate, err := s.repo.FindByID(ctx, p, id)
	if err != nil {
		return nil, err
	}

	relationship := input.RelationshipType
	if relationship == "" {
		relationship = candidate.RelationshipType
	}
	if !relationship.Valid() {
		return nil, domain.ErrInvalidRelationshipType
	}

	candidate.FirstName = input.FirstName
	candidate.LastName = input.LastName
	candidate.Email = input.Email
	candidate.Phone = input.Phone
	candidate.LinkedinURL = input.LinkedinURL
	candidate.CurrentCompany = input.CurrentCompany
	candidate.CurrentTitle = input.CurrentTitle
	candidate.PastCompanies = input.PastCompanies
	candidate.PastTitles = input.PastTitles
	candidate.RelationshipType = relationship
	candidate.FunctionalRole = input.FunctionalRole
	candidate.LocationCategory = input.LocationCategory
	candidate.IsActiveLooking = input.IsActiveLooking
	candidate.Compensation = input.Compensation
	candidate.Visa = input.Visa
	candidate.Notes = input.Notes
	candidate.UpdatedBy = p.UserID

	if err := s.repo.Update(ctx, p, candidate); err != nil {
		return nil, err
	}

	s.logChange(ctx, p, candidate.ID, "updated")
	return candidate, nil
}

func (s *CandidateService) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	return s.repo.Delete(ctx, p, id)
}

// logChange records a candidate mutation in the activity log. Failures are
// logged and swallowed so the mutation itself still succeeds.
func (s *CandidateService) logChange(ctx context.Context, p authz.Principal, candidateID uuid.UUID, change string) {
	if p.OrganizationID == nil {
		return
	}
	activity := &model.Activity{
		OrganizationID: *p.OrganizationID,
		CandidateID:    candidateID,
		ActorID:        p.UserID,
		Type:           model.ActivityCandidateChange,
		Metadata:       model.JSONMap{"change": change},
	}
	if err := s.activityRepo.Insert(ctx, p, activity); err != nil {
		slog.Warn("failed to record candidate activity", "error", err, "candidate_id", candidateID)
	}
}
