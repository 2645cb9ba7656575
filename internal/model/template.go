// internal/model/template.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TemplateType string

const (
	TemplateEmail    TemplateType = "email"
	TemplateLinkedin TemplateType = "linkedin"
	TemplateSMS      TemplateType = "sms"
)

// Template is reusable outreach content. Content carries {placeholder}
// tokens; Variables documents each placeholder. Both are stored verbatim
// and only rendered at send time.
type Template struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string       `gorm:"type:text;not null" json:"name"`
	Type           TemplateType `gorm:"type:text;not null;default:'email'" json:"type"`
	Subject        string       `gorm:"type:text" json:"subject"`
	Content        string       `gorm:"type:text;not null" json:"content"`
	Variables      JSONMap      `gorm:"type:jsonb" json:"variables"`
	CreatedBy      uuid.UUID    `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
