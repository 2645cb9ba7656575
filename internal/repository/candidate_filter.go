// internal/repository/candidate_filter.go
package repository

import (
	"github.com/dgoss28/clear-match-ai/internal/model"
	"gorm.io/gorm"
)

// CandidateFilter is the search/filter input for candidate list queries.
// Zero values mean "no restriction": empty slices are ignored, and the
// active-looking tri-state only restricts when explicitly set.
type CandidateFilter struct {
	Query              string
	RelationshipTypes  []model.RelationshipType
	FunctionalRoles    []string
	LocationCategories []string
	ActiveLooking      *bool
}

// Condition is one WHERE fragment with its arguments.
type Condition struct {
	Expr string
	Args []interface{}
}

// Conditions compiles the filter into WHERE fragments that AND together.
// Free text matches as a case-insensitive substring across first name,
// last name, current company and current title with OR semantics. Kept as
// a pure function so the composition rules are testable without a
// database; callers still apply the organization scope on top, filters
// never widen beyond it.
func (f CandidateFilter) Conditions() []Condition {
	var conds []Condition

	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		conds = append(conds, Condition{
			Expr: "(first_name ILIKE ? OR last_name ILIKE ? OR current_company ILIKE ? OR current_title ILIKE ?)",
			Args: []interface{}{pattern, pattern, pattern, pattern},
		})
	}

	if len(f.RelationshipTypes) > 0 {
		conds = append(conds, Condition{
			Expr: "relationship_type IN ?",
			Args: []interface{}{f.RelationshipTypes},
		})
	}

	if len(f.FunctionalRoles) > 0 {
		conds = append(conds, Condition{
			Expr: "functional_role IN ?",
			Args: []interface{}{f.FunctionalRoles},
		})
	}

	if len(f.LocationCategories) > 0 {
		conds = append(conds, Condition{
			Expr: "location_category IN ?",
			Args: []interface{}{f.LocationCategories},
		})
	}

	if f.ActiveLooking != nil {
		conds = append(conds, Condition{
			Expr: "is_active_looking = ?",
			Args: []interface{}{*f.ActiveLooking},
		})
	}

	return conds
}

// apply attaches every condition to the query.
func (f CandidateFilter) apply(db *gorm.DB) *gorm.DB {
	for _, c := range f.Conditions() {
		db = db.Where(c.Expr, c.Args...)
	}
	return db
}
