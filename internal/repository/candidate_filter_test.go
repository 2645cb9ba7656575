package repository

import (
	"testing"

	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateFilterConditions(t *testing.T) {
	t.Run("empty filter produces no conditions", func(t *testing.T) {
		assert.Empty(t, CandidateFilter{}.Conditions())
	})

	t.Run("free text searches four fields with OR", func(t *testing.T) {
		conds := CandidateFilter{Query: "doe"}.Conditions()
		require.Len(t, conds, 1)
		assert.Equal(t,
			"(first_name ILIKE ? OR last_name ILIKE ? OR current_company ILIKE ? OR current_title ILIKE ?)",
			conds[0].Expr)
		assert.Equal(t, []interface{}{"%doe%", "%doe%", "%doe%", "%doe%"}, conds[0].Args)
	})

	t.Run("empty multi-selects are ignored", func(t *testing.T) {
		f := CandidateFilter{
			RelationshipTypes:  []model.RelationshipType{},
			FunctionalRoles:    nil,
			LocationCategories: []string{},
		}
		assert.Empty(t, f.Conditions())
	})

	t.Run("relationship type restricts to the selected set", func(t *testing.T) {
		conds := CandidateFilter{
			RelationshipTypes: []model.RelationshipType{model.RelationshipClient},
		}.Conditions()
		require.Len(t, conds, 1)
		assert.Equal(t, "relationship_type IN ?", conds[0].Expr)
		assert.Equal(t, []interface{}{[]model.RelationshipType{model.RelationshipClient}}, conds[0].Args)
	})

	t.Run("active-looking tri-state", func(t *testing.T) {
		assert.Empty(t, CandidateFilter{ActiveLooking: nil}.Conditions())

		yes := true
		conds := CandidateFilter{ActiveLooking: &yes}.Conditions()
		require.Len(t, conds, 1)
		assert.Equal(t, "is_active_looking = ?", conds[0].Expr)
		assert.Equal(t, []interface{}{true}, conds[0].Args)

		no := false
		conds = CandidateFilter{ActiveLooking: &no}.Conditions()
		require.Len(t, conds, 1)
		assert.Equal(t, []interface{}{false}, conds[0].Args)
	})

	t.Run("active filters combine with AND", func(t *testing.T) {
		yes := true
		f := CandidateFilter{
			Query:              "doe",
			RelationshipTypes:  []model.RelationshipType{model.RelationshipClient},
			FunctionalRoles:    []string{"engineering", "product"},
			LocationCategories: []string{"remote"},
			ActiveLooking:      &yes,
		}
		conds := f.Conditions()
		require.Len(t, conds, 5)

		exprs := make([]string, 0, len(conds))
		for _, c := range conds {
			exprs = append(exprs, c.Expr)
		}
		assert.Contains(t, exprs, "functional_role IN ?")
		assert.Contains(t, exprs, "location_category IN ?")
	})
}
