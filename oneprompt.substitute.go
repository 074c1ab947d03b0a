package oneprompt

import (
	"strings"
)

// SubstituteVariables replaces every {{name}} token in the template with the
// resolved value for the trimmed inner name. A token is replaced only when
// the resolved value is a non-empty string; when the value is empty or the
// name is not resolved at all, the original token text is left verbatim in
// the output. An explicitly supplied empty string therefore also leaves the
// literal token in place.
func SubstituteVariables(template string, resolved ResolvedValues) string {
	return tokenRegex.ReplaceAllStringFunc(template, func(token string) string {
		name := strings.TrimSpace(token[len(TokenOpenDelim) : len(token)-len(TokenCloseDelim)])
		if value, ok := resolved[name]; ok && value != "" {
			return value
		}
		return token
	})
}
