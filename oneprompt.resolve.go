package oneprompt

// ResolveVariables reconciles declared variables against caller-supplied
// input values. Variables are processed in declaration order: a value present
// in input wins (key presence, not truthiness - an explicit empty string is a
// valid value), a missing required variable fails immediately, and a missing
// optional variable falls back to its declared default.
//
// The result contains exactly the declared variable names; input keys that
// match no declaration are silently ignored so callers may pass
// forward-compatible supersets.
func ResolveVariables(declared []Variable, input InputValues) (ResolvedValues, error) {
	resolved := make(ResolvedValues, len(declared))

	for _, v := range declared {
		if value, ok := input[v.Name]; ok {
			resolved[v.Name] = value
			continue
		}
		if v.Required {
			return nil, NewMissingRequiredVariableError(v.Name)
		}
		resolved[v.Name] = v.Default
	}

	return resolved, nil
}
