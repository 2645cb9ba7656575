package outreach_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/mocks"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/outreach"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeSender struct {
	to      string
	subject string
	body    string
	err     error
	calls   int
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	f.calls++
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func testPrincipal() authz.Principal {
	orgID := uuid.New()
	return authz.Principal{UserID: uuid.New(), OrganizationID: &orgID, Role: "recruiter"}
}

func TestOutreachSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := testPrincipal()

	template := &model.Template{
		ID:             uuid.New(),
		OrganizationID: *p.OrganizationID,
		Name:           "Cold intro",
		Type:           model.TemplateEmail,
		Subject:        "Hello {first_name}",
		Content:        "Hi {first_name}, about the {role} role at {company}.",
		Variables:      model.JSONMap{"role": map[string]interface{}{"default": "open"}},
	}
	candidate := &model.Candidate{
		ID:             uuid.New(),
		OrganizationID: *p.OrganizationID,
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		CurrentCompany: "Initech",
	}

	t.Run("renders, delivers and logs the send", func(t *testing.T) {
		templateRepo := mocks.NewMockTemplateRepositoryIface(ctrl)
		candidateRepo := mocks.NewMockCandidateRepositoryIface(ctrl)
		activityRepo := mocks.NewMockActivityRepositoryIface(ctrl)
		sender := &fakeSender{}
		svc := outreach.NewService(templateRepo, candidateRepo, activityRepo, sender)

		templateRepo.EXPECT().FindByID(gomock.Any(), p, template.ID).Return(template, nil)
		candidateRepo.EXPECT().FindByID(gomock.Any(), p, candidate.ID).Return(candidate, nil)
		activityRepo.EXPECT().
			Insert(gomock.Any(), p, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ authz.Principal, a *model.Activity) error {
				assert.Equal(t, model.ActivityOutreachSent, a.Type)
				assert.Equal(t, candidate.ID, a.CandidateID)
				assert.Equal(t, template.ID.String(), a.Metadata["template_id"])
				return nil
			})

		out, err := svc.Send(context.Background(), p, outreach.SendInput{
			TemplateID:  template.ID,
			CandidateID: candidate.ID,
			Values:      map[string]string{"role": "Staff Engineer"},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, sender.calls)
		assert.Equal(t, "jane@example.com", sender.to)
		assert.Equal(t, "Hello Jane", out.Subject)
		assert.Equal(t, "Hi Jane, about the Staff Engineer role at Initech.", out.Body)
	})

	t.Run("candidate without email is rejected", func(t *testing.T) {
		templateRepo := mocks.NewMockTemplateRepositoryIface(ctrl)
		candidateRepo := mocks.NewMockCandidateRepositoryIface(ctrl)
		activityRepo := mocks.NewMockActivityRepositoryIface(ctrl)
		sender := &fakeSender{}
		svc := outreach.NewService(templateRepo, candidateRepo, activityRepo, sender)

		noEmail := *candidate
		noEmail.Email = ""

		templateRepo.EXPECT().FindByID(gomock.Any(), p, template.ID).Return(template, nil)
		candidateRepo.EXPECT().FindByID(gomock.Any(), p, candidate.ID).Return(&noEmail, nil)

		_, err := svc.Send(context.Background(), p, outreach.SendInput{
			TemplateID:  template.ID,
			CandidateID: candidate.ID,
		})
		assert.ErrorIs(t, err, domain.ErrMissingRecipient)
		assert.Zero(t, sender.calls)
	})

	t.Run("cross-tenant template fails before delivery", func(t *testing.T) {
		templateRepo := mocks.NewMockTemplateRepositoryIface(ctrl)
		candidateRepo := mocks.NewMockCandidateRepositoryIface(ctrl)
		activityRepo := mocks.NewMockActivityRepositoryIface(ctrl)
		sender := &fakeSender{}
		svc := outreach.NewService(templateRepo, candidateRepo, activityRepo, sender)

		templateRepo.EXPECT().
			FindByID(gomock.Any(), p, template.ID).
			Return(nil, domain.ErrTemplateNotFound)

		_, err := svc.Send(context.Background(), p, outreach.SendInput{
			TemplateID:  template.ID,
			CandidateID: candidate.ID,
		})
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
		assert.Zero(t, sender.calls)
	})

	t.Run("delivery failure propagates and skips the log", func(t *testing.T) {
		templateRepo := mocks.NewMockTemplateRepositoryIface(ctrl)
		candidateRepo := mocks.NewMockCandidateRepositoryIface(ctrl)
		activityRepo := mocks.NewMockActivityRepositoryIface(ctrl)
		sender := &fakeSender{err: errors.New("smtp down")}
		svc := outreach.NewService(templateRepo, candidateRepo, activityRepo, sender)

		templateRepo.EXPECT().FindByID(gomock.Any(), p, template.ID).Return(template, nil)
		candidateRepo.EXPECT().FindByID(gomock.Any(), p, candidate.ID).Return(candidate, nil)

		_, err := svc.Send(context.Background(), p, outreach.SendInput{
			TemplateID:  template.ID,
			CandidateID: candidate.ID,
		})
		assert.Error(t, err)
	})
}
