package oneprompt

import (
	"regexp"
	"strings"
)

// tokenRegex matches {{ inner }} variable tokens. The inner text may not
// contain a closing brace, so each token closes at the first following }}.
var tokenRegex = regexp.MustCompile(`\{\{([^}]*)\}\}`)

// ExtractVariables returns the names of all variable tokens referenced in a
// template, in order of first character position. Surrounding whitespace
// inside the braces is trimmed. Repeated references yield repeated entries.
func ExtractVariables(template string) []string {
	matches := tokenRegex.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSpace(m[1]))
	}
	return names
}
