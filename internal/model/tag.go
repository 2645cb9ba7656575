// internal/model/tag.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index:idx_tags_org_name,unique" json:"organization_id"`
	Name           string    `gorm:"type:text;not null;index:idx_tags_org_name,unique" json:"name"`
	Color          string    `gorm:"type:text;not null;default:'#6b7280'" json:"color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CandidateTag is the tag association row. The composite primary key keeps
// at most one association per (candidate, tag) pair.
type CandidateTag struct {
	CandidateID uuid.UUID `gorm:"type:uuid;primary_key" json:"candidate_id"`
	TagID       uuid.UUID `gorm:"type:uuid;primary_key" json:"tag_id"`
	CreatedAt   time.Time `json:"created_at"`
}
