// internal/outreach/render.go
package outreach

import (
	"strings"

	"github.com/dgoss28/clear-match-ai/internal/model"
)

// Render substitutes {name} placeholders in template content. Values win
// over variable defaults; placeholders with no value at all are left
// intact so a reviewer can spot them in the sent message.
func Render(content string, template *model.Template, values map[string]string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(content, '{')
		if start < 0 {
			b.WriteString(content)
			break
		}
		end := strings.IndexByte(content[start:], '}')
		if end < 0 {
			b.WriteString(content)
			break
		}
		end += start

		b.WriteString(content[:start])
		name := content[start+1 : end]

		if v, ok := values[name]; ok {
			b.WriteString(v)
		} else if v, ok := variableDefault(template, name); ok {
			b.WriteString(v)
		} else {
			b.WriteString(content[start : end+1])
		}

		content = content[end+1:]
	}
	return b.String()
}

// variableDefault digs a default value out of the template's variables map.
// A variable entry is either a plain string default or an object with a
// "default" key.
func variableDefault(template *model.Template, name string) (string, bool) {
	if template == nil || template.Variables == nil {
		return "", false
	}
	raw, ok := template.Variables[name]
	if !ok {
		return "", false
	}

	switch v := raw.(type) {
	case string:
		return v, true
	case map[string]interface{}:
		if d, ok := v["default"].(string); ok {
			return d, true
		}
	}
	return "", false
}

// CandidateValues builds the standard substitution set for a candidate.
func CandidateValues(c *model.Candidate) map[string]string {
	return map[string]string{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"company":    c.CurrentCompany,
		"title":      c.CurrentTitle,
	}
}
