package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgoss28/clear-match-ai/internal/auth"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/mocks"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProfileSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("bootstraps organization with admin profile", func(t *testing.T) {
		profileRepo := mocks.NewMockProfileRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewProfileService(profileRepo, orgRepo, hasher, tokens)

		orgRepo.EXPECT().
			CreateWithAdmin(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organization, admin *model.Profile) error {
				assert.Equal(t, "Acme Search", org.Name)
				assert.Equal(t, "pat@example.com", admin.Email)
				assert.NotEmpty(t, admin.PasswordHash)
				assert.NotEqual(t, "a-long-enough-password", admin.PasswordHash)

				org.ID = uuid.New()
				admin.ID = uuid.New()
				admin.OrganizationID = &org.ID
				admin.Role = model.RoleAdmin
				return nil
			})

		out, err := svc.Signup(context.Background(), service.SignupInput{
			Email:            "pat@example.com",
			Password:         "a-long-enough-password",
			FirstName:        "Pat",
			OrganizationName: "Acme Search",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, model.RoleAdmin, out.Profile.Role)
		assert.NotNil(t, out.Profile.OrganizationID)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		profileRepo := mocks.NewMockProfileRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewProfileService(profileRepo, orgRepo, hasher, tokens)

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:            "pat@example.com",
			Password:         "short",
			FirstName:        "Pat",
			OrganizationName: "Acme Search",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate email surfaces as conflict", func(t *testing.T) {
		profileRepo := mocks.NewMockProfileRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewProfileService(profileRepo, orgRepo, hasher, tokens)

		orgRepo.EXPECT().
			CreateWithAdmin(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrEmailAlreadyExists)

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:            "pat@example.com",
			Password:         "a-long-enough-password",
			FirstName:        "Pat",
			OrganizationName: "Acme Search",
		})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestProfileLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	hash, err := hasher.Hash("a-long-enough-password")
	assert.NoError(t, err)

	orgID := uuid.New()
	profile := &model.Profile{
		ID:             uuid.New(),
		Email:          "pat@example.com",
		PasswordHash:   hash,
		Role:           model.RoleRecruiter,
		OrganizationID: &orgID,
	}

	t.Run("valid credentials", func(t *testing.T) {
		profileRepo := mocks.NewMockProfileRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewProfileService(profileRepo, orgRepo, hasher, tokens)

		profileRepo.EXPECT().FindByEmail(gomock.Any(), profile.Email).Return(profile, nil)

		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    profile.Email,
			Password: "a-long-enough-password",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)

		claims, err := tokens.Validate(out.Token)
		assert.NoError(t, err)
		assert.Equal(t, profile.ID.String(), claims.ProfileID)
	})

	t.Run("wrong password", func(t *testing.T) {
		profileRepo := mocks.NewMockProfileRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewProfileService(profileRepo, orgRepo, hasher, tokens)

		profileRepo.EXPECT().FindByEmail(gomock.Any(), profile.Email).Return(profile, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    profile.Email,
			Password: "not-the-password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email fails the same way as a wrong password", func(t *testing.T) {
		profileRepo := mocks.NewMockProfileRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		svc := service.NewProfileService(profileRepo, orgRepo, hasher, tokens)

		profileRepo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrProfileNotFound)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever-password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
