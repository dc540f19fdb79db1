package pipeline

import (
	"regexp"
	"strings"
)

// Models asked for bare SQL still tend to wrap it in a markdown fence.
// The pattern removes a leading ```sql (or bare ```) marker and a
// trailing ``` marker, line by line, matching the behaviour the prompt
// templates were tuned against.
var codeFenceRe = regexp.MustCompile("(?im)^```sql\\s*|\\s*```$")

// SanitizeSQL strips markdown code-fence decoration from a model-generated
// SQL string and trims surrounding whitespace. Idempotent: a clean string
// comes back unchanged apart from the trim.
func SanitizeSQL(query string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(query, ""))
}
