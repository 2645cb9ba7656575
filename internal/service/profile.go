// internal/service/profile.go
package service

import (
	"context"
	"fmt"

	"github.com/dgoss28/clear-match-ai/internal/auth"
	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/go-playground/validator/v10"
)

type ProfileService struct {
	repo           repository.ProfileRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewProfileService(
	repo repository.ProfileRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *ProfileService {
	return &ProfileService{
		repo:           repo,
		orgRepo:        orgRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=12"`
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name"`
	OrganizationName string `json:"organization_name" validate:"required"`
}

type AuthOutput struct {
	Profile *model.Profile `json:"profile"`
	Token   string         `json:"token"`
}

// Signup bootstraps a tenant: a new organization plus its first profile,
// which becomes the organization's admin.
func (s *ProfileService) Signup(ctx context.Context, input SignupInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	org := &model.Organization{Name: input.OrganizationName}
	profile := &model.Profile{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
	}

	if err := s.orgRepo.CreateWithAdmin(ctx, org, profile); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(profile.ID.String(), profile.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{Profile: profile, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *ProfileService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	profile, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Same failure for a missing profile and a wrong password.
		return nil, domain.ErrInvalidCredentials
	}

	verified, err := s.passwordHasher.Verify(input.Password, profile.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(profile.ID.String(), profile.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{Profile: profile, Token: token}, nil
}

type MeOutput struct {
	Profile      *model.Profile      `json:"profile"`
	Organization *model.Organization `json:"organization,omitempty"`
}

func (s *ProfileService) Get(ctx context.Context, p authz.Principal) (*MeOutput, error) {
	profile, err := s.repo.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	out := &MeOutput{Profile: profile}
	if profile.OrganizationID != nil {
		org, err := s.orgRepo.FindByID(ctx, *profile.OrganizationID)
		if err != nil {
			return nil, err
		}
		out.Organization = org
	}
	return out, nil
}

type SettingsInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
}

func (s *ProfileService) UpdateSettings(ctx context.Context, p authz.Principal, input SettingsInput) (*model.Profile, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	profile, err := s.repo.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = input.FirstName
	profile.LastName = input.LastName

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
