// internal/outreach/service.go
package outreach

import (
	"context"
	"fmt"

	"github.com/dgoss28/clear-match-ai/internal/authz"
	"github.com/dgoss28/clear-match-ai/internal/config"
	"github.com/dgoss28/clear-match-ai/internal/domain"
	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender delivers a rendered message. Satisfied by the sendgrid client
// wrapper below; tests swap in a fake.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service renders a template for a candidate and delivers it, logging an
// activity row for the send.
type Service struct {
	templateRepo  repository.TemplateRepositoryIface
	candidateRepo repository.CandidateRepositoryIface
	activityRepo  repository.ActivityRepositoryIface
	sender        Sender
}

func NewService(
	templateRepo repository.TemplateRepositoryIface,
	candidateRepo repository.CandidateRepositoryIface,
	activityRepo repository.ActivityRepositoryIface,
	sender Sender,
) *Service {
	return &Service{
		templateRepo:  templateRepo,
		candidateRepo: candidateRepo,
		activityRepo:  activityRepo,
		sender:        sender,
	}
}

type SendInput struct {
	TemplateID  uuid.UUID         `json:"template_id"`
	CandidateID uuid.UUID         `json:"candidate_id"`
	Values      map[string]string `json:"values"`
}

type SendOutput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Send renders and delivers. Both lookups run under the caller's scope, so
// cross-tenant template or candidate ids fail as not-found before anything
// leaves the building.
func (s *Service) Send(ctx context.Context, p authz.Principal, input SendInput) (*SendOutput, error) {
	template, err := s.templateRepo.FindByID(ctx, p, input.TemplateID)
	if err != nil {
		return nil, err
	}

	candidate, err := s.candidateRepo.FindByID(ctx, p, input.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate.Email == "" {
		return nil, domain.ErrMissingRecipient
	}

	values := CandidateValues(candidate)
	for k, v := range input.Values {
		values[k] = v
	}

	subject := Render(template.Subject, template, values)
	body := Render(template.Content, template, values)

	if err := s.sender.Send(ctx, candidate.Email, subject, body); err != nil {
		return nil, fmt.Errorf("sending outreach: %w", err)
	}

	activity := &model.Activity{
		OrganizationID: candidate.OrganizationID,
		CandidateID:    candidate.ID,
		ActorID:        p.UserID,
		Type:           model.ActivityOutreachSent,
		Metadata: model.JSONMap{
			"template_id":   template.ID.String(),
			"template_name": template.Name,
			"subject":       subject,
		},
	}
	if err := s.activityRepo.Insert(ctx, p, activity); err != nil {
		return nil, fmt.Errorf("recording outreach activity: %w", err)
	}

	return &SendOutput{Subject: subject, Body: body}, nil
}

// SendgridSender delivers through the Sendgrid API.
type SendgridSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func NewSendgridSender(cfg *config.Config) *SendgridSender {
	return &SendgridSender{
		client:   sendgrid.NewSendClient(cfg.Sendgrid.APIKey),
		from:     cfg.Sendgrid.From,
		fromName: cfg.Sendgrid.FromName,
	}
}

func (s *SendgridSender) Send(ctx context.Context, to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode != 202 {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
