package node

import (
	"strings"
	"text/template"
)

// render evaluates text as a template over an item's JSON. Text without
// actions is returned verbatim so plain prompts never pay for parsing.
func render(name, text string, data map[string]any) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", ErrInvalidParameter(name, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", ErrInvalidParameter(name, err)
	}
	return sb.String(), nil
}
