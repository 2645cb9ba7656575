// internal/authz/policy.go
//
// Go re-expression of the original row-level security policies: every
// organization-scoped table permits reads, inserts and updates iff the
// row's organization_id equals the caller's, and nothing else. The checks
// live here as plain functions so they can be exercised without a database;
// the repositories apply the same predicate to every statement.
package authz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal is the request-scoped identity every data-access call receives.
// It is built once per request by the auth middleware and passed explicitly,
// never read from ambient state.
type Principal struct {
	UserID         uuid.UUID
	OrganizationID *uuid.UUID
	Role           string
}

// Resource names the protected tables.
type Resource string

const (
	ResourceCandidate Resource = "candidates"
	ResourceActivity  Resource = "activities"
	ResourceTag       Resource = "tags"
	ResourceTemplate  Resource = "templates"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// deletable lists the resources with an explicit delete policy. The
// original schema defines none, so delete is deny-by-default; candidates,
// templates and tags get an organization-scoped delete here because the
// product exposes delete buttons for all three. Activities are an immutable
// log and stay out of the table.
var deletable = map[Resource]bool{
	ResourceCandidate: true,
	ResourceTemplate:  true,
	ResourceTag:       true,
}

// immutable lists resources whose rows are never updated after insert.
var immutable = map[Resource]bool{
	ResourceActivity: true,
}

// SameOrganization is the row-level predicate shared by every policy: the
// caller's profile must carry the row's organization. A nil organization
// (an unprovisioned profile) matches nothing.
func (p Principal) SameOrganization(rowOrg uuid.UUID) bool {
	return p.OrganizationID != nil && *p.OrganizationID == rowOrg
}

// Can reports whether the principal may perform action on a row of resource
// owned by rowOrg. Anything not explicitly granted is denied.
func Can(p Principal, action Action, resource Resource, rowOrg uuid.UUID) bool {
	if !p.SameOrganization(rowOrg) {
		return false
	}

	switch action {
	case ActionRead, ActionInsert:
		return true
	case ActionUpdate:
		return !immutable[resource]
	case ActionDelete:
		return deletable[resource]
	}
	return false
}

// Scope returns a gorm scope applying the organization predicate to a
// query. An unprovisioned principal gets a contradiction, so a scope miss
// is indistinguishable from an empty result set.
func Scope(p Principal) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.OrganizationID == nil {
			return db.Where("1 = 0")
		}
		return db.Where("organization_id = ?", *p.OrganizationID)
	}
}
