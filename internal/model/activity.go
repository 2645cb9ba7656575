// internal/model/activity.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Well-known activity types. The column itself is free-form text; these are
// the values the API and the dashboard rules care about.
const (
	ActivityNote            = "note"
	ActivityCall            = "call"
	ActivityEmail           = "email"
	ActivityOutreachSent    = "outreach_sent"
	ActivityCandidateChange = "candidate_updated"
)

// Activity is an immutable log entry. Rows are only ever inserted; there is
// no update or delete path for them anywhere in the system.
type Activity struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	ActorID        uuid.UUID `json:"actor_id"`
	Type           string    `json:"type"`
	Metadata       JSONMap   `json:"metadata"`
	CreatedAt      time.Time `json:"created_at"`
}
