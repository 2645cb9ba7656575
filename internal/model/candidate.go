// internal/model/candidate.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RelationshipType string

const (
	RelationshipCandidate RelationshipType = "candidate"
	RelationshipClient    RelationshipType = "client"
	RelationshipBoth      RelationshipType = "both"
)

// Valid reports whether t is one of the persisted enumeration values. The
// same set is enforced by a check constraint on the candidates table.
func (t RelationshipType) Valid() bool {
	switch t {
	case RelationshipCandidate, RelationshipClient, RelationshipBoth:
		return true
	}
	return false
}

type Candidate struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_id"`
	FirstName      string           `gorm:"type:text;not null" json:"first_name"`
	LastName       string           `gorm:"type:text" json:"last_name"`
	Email          string           `gorm:"type:text" json:"email"`
	Phone          string           `gorm:"type:text" json:"phone"`
	LinkedinURL    string           `gorm:"type:text" json:"linkedin_url"`

	CurrentCompany string `gorm:"type:text" json:"current_company"`
	CurrentTitle   string `gorm:"type:text" json:"current_title"`

	// Employment history, newest first. Stored as parallel text[] columns
	// to match the original schema.
	PastCompanies pq.StringArray `gorm:"type:text[]" json:"past_companies"`
	PastTitles    pq.StringArray `gorm:"type:text[]" json:"past_titles"`

	RelationshipType RelationshipType `gorm:"type:text;not null;default:'candidate'" json:"relationship_type"`
	FunctionalRole   string           `gorm:"type:text" json:"functional_role"`
	LocationCategory string           `gorm:"type:text" json:"location_category"`
	IsActiveLooking  bool             `gorm:"not null;default:false" json:"is_active_looking"`

	Compensation JSONMap `gorm:"type:jsonb" json:"compensation"`
	Visa         JSONMap `gorm:"type:jsonb" json:"visa"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tags []Tag `gorm:"many2many:candidate_tags;" json:"tags,omitempty"`
}
