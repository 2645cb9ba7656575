package service_test

import (
	"context"
	"testing"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/mocks"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTemplateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := testPrincipal()
	source := &model.Template{
		ID:             uuid.New(),
		OrganizationID: *p.OrganizationID,
		Name:           "Cold intro",
		Type:           model.TemplateLinkedin,
		Subject:        "Hello {first_name}",
		Content:        "Hi {first_name}, saw your work at {company}.",
		Variables:      model.JSONMap{"company": map[string]interface{}{"default": "your company"}},
		CreatedBy:      uuid.New(),
	}

	t.Run("copy matches source except name and id", func(t *testing.T) {
		repo := mocks.NewMockTemplateRepositoryIface(ctrl)
		svc := service.NewTemplateService(repo)

		repo.EXPECT().FindByID(gomock.Any(), p, source.ID).Return(source, nil)
		repo.EXPECT().
			Create(gomock.Any(), p, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ authz.Principal, dup *model.Template) error {
				dup.ID = uuid.New()
				return nil
			})

		dup, err := svc.Duplicate(context.Background(), p, source.ID)
		assert.NoError(t, err)
		assert.Equal(t, source.Name+service.DuplicateSuffix, dup.Name)
		assert.Equal(t, source.Content, dup.Content)
		assert.Equal(t, source.Subject, dup.Subject)
		assert.Equal(t, source.Type, dup.Type)
		assert.Equal(t, source.Variables, dup.Variables)
		assert.NotEqual(t, source.ID, dup.ID)
		assert.Equal(t, p.UserID, dup.CreatedBy)
	})

	t.Run("variables are copied, not shared", func(t *testing.T) {
		repo := mocks.NewMockTemplateRepositoryIface(ctrl)
		svc := service.NewTemplateService(repo)

		repo.EXPECT().FindByID(gomock.Any(), p, source.ID).Return(source, nil)
		repo.EXPECT().Create(gomock.Any(), p, gomock.Any()).Return(nil)

		dup, err := svc.Duplicate(context.Background(), p, source.ID)
		assert.NoError(t, err)

		dup.Variables["role"] = "new"
		assert.NotContains(t, source.Variables, "role")
	})

	t.Run("cross-tenant source fails as not found", func(t *testing.T) {
		repo := mocks.NewMockTemplateRepositoryIface(ctrl)
		svc := service.NewTemplateService(repo)

		repo.EXPECT().
			FindByID(gomock.Any(), p, source.ID).
			Return(nil, domain.ErrTemplateNotFound)

		_, err := svc.Duplicate(context.Background(), p, source.ID)
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})
}

func TestTemplateCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := testPrincipal()

	t.Run("defaults to email type", func(t *testing.T) {
		repo := mocks.NewMockTemplateRepositoryIface(ctrl)
		svc := service.NewTemplateService(repo)

		repo.EXPECT().
			Create(gomock.Any(), p, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ authz.Principal, tmpl *model.Template) error {
				assert.Equal(t, model.TemplateEmail, tmpl.Type)
				assert.Equal(t, *p.OrganizationID, tmpl.OrganizationID)
				return nil
			})

		_, err := svc.Create(context.Background(), p, service.TemplateInput{
			Name:    "Follow up",
			Content: "Just checking in, {first_name}.",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		repo := mocks.NewMockTemplateRepositoryIface(ctrl)
		svc := service.NewTemplateService(repo)

		_, err := svc.Create(context.Background(), p, service.TemplateInput{
			Name:    "Follow up",
			Type:    "carrier-pigeon",
			Content: "hello",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects missing content", func(t *testing.T) {
		repo := mocks.NewMockTemplateRepositoryIface(ctrl)
		svc := service.NewTemplateService(repo)

		_, err := svc.Create(context.Background(), p, service.TemplateInput{Name: "Empty"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestTemplateUpdatePreservesContentVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := testPrincipal()
	existing := &model.Template{
		ID:             uuid.New(),
		OrganizationID: *p.OrganizationID,
		Name:           "Old",
		Type:           model.TemplateEmail,
		Content:        "old content",
	}

	repo := mocks.NewMockTemplateRepositoryIface(ctrl)
	svc := service.NewTemplateService(repo)

	content := "Hi {first_name}, {unknown_token} stays as-is."
	repo.EXPECT().FindByID(gomock.Any(), p, existing.ID).Return(existing, nil)
	repo.EXPECT().
		Update(gomock.Any(), p, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ authz.Principal, tmpl *model.Template) error {
			assert.Equal(t, content, tmpl.Content)
			return nil
		})

	_, err := svc.Update(context.Background(), p, existing.ID, service.TemplateInput{
		Name:    "New",
		Content: content,
	})
	assert.NoError(t, err)
}
