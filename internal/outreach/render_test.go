package outreach

import (
	"testing"

	"github.com/dgoss28/clear-match-ai/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Run("substitutes provided values", func(t *testing.T) {
		out := Render("Hi {first_name}, saw your work at {company}.", nil, map[string]string{
			"first_name": "Jane",
			"company":    "Acme",
		})
		assert.Equal(t, "Hi Jane, saw your work at Acme.", out)
	})

	t.Run("falls back to variable defaults", func(t *testing.T) {
		tpl := &model.Template{
			Variables: model.JSONMap{
				"signoff": "Best,\nThe Team",
				"role":    map[string]interface{}{"default": "engineer", "description": "target role"},
			},
		}
		out := Render("{role} role. {signoff}", tpl, nil)
		assert.Equal(t, "engineer role. Best,\nThe Team", out)
	})

	t.Run("values win over defaults", func(t *testing.T) {
		tpl := &model.Template{Variables: model.JSONMap{"role": "engineer"}}
		out := Render("{role}", tpl, map[string]string{"role": "designer"})
		assert.Equal(t, "designer", out)
	})

	t.Run("unknown placeholders left intact", func(t *testing.T) {
		out := Render("Hi {first_name}, re {job_req}", nil, map[string]string{"first_name": "Jo"})
		assert.Equal(t, "Hi Jo, re {job_req}", out)
	})

	t.Run("unterminated brace passes through", func(t *testing.T) {
		out := Render("set {a, b} = {1", nil, map[string]string{"a, b": "x"})
		assert.Equal(t, "set x = {1", out)
	})

	t.Run("content without placeholders is unchanged", func(t *testing.T) {
		assert.Equal(t, "plain text", Render("plain text", nil, nil))
	})
}

func TestCandidateValues(t *testing.T) {
	c := &model.Candidate{
		FirstName:      "Jane",
		LastName:       "Doe",
		CurrentCompany: "Acme",
		CurrentTitle:   "Staff Engineer",
	}
	values := CandidateValues(c)
	assert.Equal(t, "Jane", values["first_name"])
	assert.Equal(t, "Doe", values["last_name"])
	assert.Equal(t, "Acme", values["company"])
	assert.Equal(t, "Staff Engineer", values["title"])
}
