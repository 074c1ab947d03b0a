package oneprompt

import (
	"regexp"
)

// directiveRegex matches self-closing conditional directives of the form
//
//	<if var="NAME" equals="LITERAL" show="PART" else="PART" />
//
// The attribute order is fixed; the else attribute is optional.
var directiveRegex = regexp.MustCompile(
	`<if\s+var="([^"]*)"\s+equals="([^"]*)"\s+show="([^"]*)"(?:\s+else="([^"]*)")?\s*/>`)

// conditionalDirective is one parsed directive occurrence.
type conditionalDirective struct {
	Variable string
	Equals   string
	ShowPart string
	ElsePart string
	HasElse  bool
}

// extractDirectives returns all conditional directives in a template, in
// order of occurrence. Shared by the conditional processor and the validator.
func extractDirectives(template string) []conditionalDirective {
	matches := directiveRegex.FindAllStringSubmatch(template, -1)
	directives := make([]conditionalDirective, 0, len(matches))
	for _, m := range matches {
		directives = append(directives, conditionalDirective{
			Variable: m[1],
			Equals:   m[2],
			ShowPart: m[3],
			ElsePart: m[4],
			HasElse:  m[4] != "",
		})
	}
	return directives
}

// ProcessConditionals replaces every conditional directive in the template
// with the content of the selected part. The directive's variable value is
// compared against the literal with exact string equality: on match the show
// part is inserted, otherwise the else part if present, otherwise nothing.
//
// A directive naming a part that does not exist is replaced by an empty
// string rather than failing; rejecting such documents is the validator's
// job, and rendering stays permissive to avoid a second failure surface.
// All occurrences are replaced in a single left-to-right pass; inserted part
// content is not rescanned for further directives.
func ProcessConditionals(template string, resolved ResolvedValues, parts []Part) string {
	return directiveRegex.ReplaceAllStringFunc(template, func(match string) string {
		m := directiveRegex.FindStringSubmatch(match)

		selected := ""
		if resolved[m[1]] == m[2] {
			selected = m[3]
		} else if m[4] != "" {
			selected = m[4]
		}

		if selected == "" {
			return ""
		}
		for _, p := range parts {
			if p.Name == selected {
				return p.Content
			}
		}
		return ""
	})
}
