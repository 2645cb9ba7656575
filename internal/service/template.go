// internal/service/template.go
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

// DuplicateSuffix is appended to the name of a duplicated template.
const DuplicateSuffix = " (copy)"

type TemplateService struct {
	repo     repository.TemplateRepositoryIface
	validate *validator.Validate
}

func NewTemplateService(repo repository.TemplateRepositoryIface) *TemplateService {
	return &TemplateService{
		repo:     repo,
		validate: validator.New(),
	}
}

type TemplateInput struct {
	Name      string             `json:"name" validate:"required"`
	Type      model.TemplateType `json:"type" validate:"omitempty,oneof=email linkedin sms"`
	Subject   string             `json:"subject"`
	Content   string             `json:"content" validate:"required"`
	Variables model.JSONMap      `json:"variables"`
}

func (s *TemplateService) List(ctx context.Context, p authz.Principal) ([]*model.Template, error) {
	return s.repo.FindAll(ctx, p)
}

func (s *TemplateService) Get(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Template, error) {
	return s.repo.FindByID(ctx, p, id)
}

func (s *TemplateService) Create(ctx context.Context, p authz.Principal, input TemplateInput) (*model.Template, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if p.OrganizationID == nil {
		return nil, domain.ErrNoOrganization
	}

	templateType := input.Type
	if templateType == "" {
		templateType = model.TemplateEmail
	}

	template := &model.Template{
		OrganizationID: *p.OrganizationID,
		Name:           input.Name,
		Type:           templateType,
		Subject:        input.Subject,
		Content:        input.Content,
		Variables:      input.Variables,
		CreatedBy:      p.UserID,
	}

	if err := s.repo.Create(ctx, p, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Update preserves content and variables exactly as submitted; no
// normalization or placeholder rewriting happens at write time.
func (s *TemplateService) Update(ctx context.Context, p authz.Principal, id uuid.UUID, input TemplateInput) (*model.Template, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	template, err := s.repo.FindByID(ctx, p, id)
	if err != nil {
		return nil, err
	}

	template.Name = input.Name
	if input.Type != "" {
		template.Type = input.Type
	}
	template.Subject = input.Subject
	template.Content = input.Content
	template.Variables = input.Variables

	if err := s.repo.Update(ctx, p, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Duplicate produces a new record with identical content, variables and
// type, a fresh id, and the source name marked with a suffix.
func (s *TemplateService) Duplicate(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.Template, error) {
	source, err := s.repo.FindByID(ctx, p, id)
	if err != nil {
		return nil, err
	}

	copyVars := make(model.JSONMap, len(source.Variables))
	for k, v := range source.Variables {
		copyVars[k] = v
	}

	duplicate := &model.Template{
		OrganizationID: source.OrganizationID,
		Name:           source.Name + DuplicateSuffix,
		Type:           source.Type,
		Subject:        source.Subject,
		Content:        source.Content,
		Variables:      copyVars,
		CreatedBy:      p.UserID,
	}

	if err := s.repo.Create(ctx, p, duplicate); err != nil {
		return nil, err
	}
	return duplicate, nil
}

func (s *TemplateService) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	return s.repo.Delete(ctx, p, id)
}
