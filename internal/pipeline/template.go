package pipeline

import (
	"fmt"
	"regexp"
)

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Template is a prompt template with {name} placeholders. Render fails
// fast when a required field is missing instead of interpolating an
// empty string.
type Template struct {
	name string
	text string
}

func NewTemplate(name, text string) Template {
	return Template{name: name, text: text}
}

func (t Template) Render(fields map[string]string) (string, error) {
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(t.text, func(match string) string {
		key := placeholderRe.FindStringSubmatch(match)[1]
		value, ok := fields[key]
		if !ok {
			missing = append(missing, key)
			return match
		}
		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("template %s: missing fields %v", t.name, missing)
	}
	return out, nil
}

// Fields returns the placeholder names the template expects, in order of
// first appearance.
func (t Template) Fields() []string {
	seen := make(map[string]bool)
	var fields []string
	for _, match := range placeholderRe.FindAllStringSubmatch(t.text, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			fields = append(fields, match[1])
		}
	}
	return fields
}
