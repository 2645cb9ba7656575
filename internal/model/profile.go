// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfileRole string

const (
	RoleAdmin     ProfileRole = "admin"
	RoleRecruiter ProfileRole = "recruiter"
)

// Profile is the identity record for an authenticated principal. A profile
// belongs to at most one organization; OrganizationID stays nil until the
// user is provisioned into a tenant, and an unprovisioned profile matches
// no organization-scoped rows.
type Profile struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string      `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName      string      `gorm:"type:text;not null" json:"first_name"`
	LastName       string      `gorm:"type:text" json:"last_name"`
	PasswordHash   string      `gorm:"type:text;not null" json:"-"`
	Role           ProfileRole `gorm:"type:text;not null;default:'recruiter'" json:"role"`
	OrganizationID *uuid.UUID  `gorm:"type:uuid;index" json:"organization_id"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
