package oneprompt

// ValidateDocument checks the internal consistency of a document. It is the
// single source of truth for document well-formedness and runs its checks in
// a fixed sequence, failing fast on the first violation:
//
//  1. metadata carries a non-empty title
//  2. variable names are non-empty and unique
//  3. every {{token}} in the template names a declared variable
//     (declared-but-unused is not an error)
//  4. every optional variable carries a default value
//  5. part names are non-empty and unique
//  6. every conditional directive names a declared variable
//  7. every conditional directive's show and else parts exist
//
// Validation never mutates the document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return NewSerializeError(ErrMsgNilDocument, nil)
	}

	if doc.Title() == "" {
		return NewMissingTitleError()
	}

	declared := make(map[string]bool, len(doc.Variables))
	for _, v := range doc.Variables {
		if v.Name == "" {
			return NewEmptyVariableNameError()
		}
		if declared[v.Name] {
			return NewDuplicateVariableError(v.Name)
		}
		declared[v.Name] = true
	}

	for _, name := range ExtractVariables(doc.Template) {
		if !declared[name] {
			return NewUndeclaredVariableError(name)
		}
	}

	for _, v := range doc.Variables {
		if !v.Required && v.Default == "" {
			return NewMissingDefaultError(v.Name)
		}
	}

	partNames := make(map[string]bool, len(doc.Parts))
	for _, p := range doc.Parts {
		if p.Name == "" {
			return NewEmptyPartNameError()
		}
		if partNames[p.Name] {
			return NewDuplicatePartError(p.Name)
		}
		partNames[p.Name] = true
	}

	for _, dir := range extractDirectives(doc.Template) {
		if !declared[dir.Variable] {
			return NewDirectiveUnknownVariableError(dir.Variable)
		}
		if !partNames[dir.ShowPart] {
			return NewDirectiveUnknownPartError(dir.ShowPart)
		}
		if dir.HasElse && !partNames[dir.ElsePart] {
			return NewDirectiveUnknownPartError(dir.ElsePart)
		}
	}

	return nil
}
