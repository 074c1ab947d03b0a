package oneprompt

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Validation errors
	ErrMsgMissingTitle        = "metadata title is missing or empty"
	ErrMsgEmptyVariableName   = "variable name cannot be empty"
	ErrMsgDuplicateVariable   = "duplicate variable name"
	ErrMsgUndeclaredVariable  = "template references undeclared variable"
	ErrMsgMissingDefault      = "optional variable is missing a default value"
	ErrMsgEmptyPartName       = "part name cannot be empty"
	ErrMsgDuplicatePart       = "duplicate part name"
	ErrMsgDirectiveUnknownVar = "conditional directive references undeclared variable"
	ErrMsgDirectiveNoPart     = "conditional directive references unknown part"

	// Render errors
	ErrMsgMissingRequiredVar = "required variable has no input value"

	// Parse errors
	ErrMsgEmptyDocument   = "document is empty"
	ErrMsgReadFile        = "failed to read document file"
	ErrMsgMalformedXML    = "malformed XML document"
	ErrMsgMissingRoot     = "missing <prompt> root element"
	ErrMsgMissingTemplate = "missing <template> element"

	// Serialization errors
	ErrMsgNilDocument    = "document is nil"
	ErrMsgSerializeWrite = "XML write failed"

	// Engine errors
	ErrMsgNoStorage = "no storage backend configured"
)

// Error code constants for categorization
const (
	ErrCodeValidation = "ONEPROMPT_VALIDATION"
	ErrCodeParse      = "ONEPROMPT_PARSE"
	ErrCodeRender     = "ONEPROMPT_RENDER"
	ErrCodeSerialize  = "ONEPROMPT_SERIALIZE"
	ErrCodeStorage    = "ONEPROMPT_STORAGE"
)

// Operation prefix constants for facade-level error wrapping
const (
	OpPrefixValidate  = "Validation failed"
	OpPrefixParse     = "Parse failed"
	OpPrefixSerialize = "Conversion to XML failed"
	OpPrefixRender    = "Render failed"
	OpPrefixStorage   = "Storage operation failed"
)

// NewMissingTitleError creates an error for a missing or empty metadata title.
func NewMissingTitleError() error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgMissingTitle).
		WithMetadata(MetaKeyField, MetadataKeyTitle)
}

// NewEmptyVariableNameError creates an error for a declared variable with no name.
func NewEmptyVariableNameError() error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgEmptyVariableName)
}

// NewDuplicateVariableError creates an error for a variable declared twice.
func NewDuplicateVariableError(name string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgDuplicateVariable+": "+name).
		WithMetadata(MetaKeyVariable, name)
}

// NewUndeclaredVariableError creates an error for a template token
// referencing a variable that was never declared.
func NewUndeclaredVariableError(name string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgUndeclaredVariable+": "+name).
		WithMetadata(MetaKeyVariable, name)
}

// NewMissingDefaultError creates an error for an optional variable without a default.
func NewMissingDefaultError(name string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgMissingDefault+": "+name).
		WithMetadata(MetaKeyVariable, name)
}

// NewEmptyPartNameError creates an error for a part with no name.
func NewEmptyPartNameError() error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgEmptyPartName)
}

// NewDuplicatePartError creates an error for a part declared twice.
func NewDuplicatePartError(name string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgDuplicatePart+": "+name).
		WithMetadata(MetaKeyPart, name)
}

// NewDirectiveUnknownVariableError creates an error for a conditional
// directive whose var attribute names an undeclared variable.
func NewDirectiveUnknownVariableError(name string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgDirectiveUnknownVar+": "+name).
		WithMetadata(MetaKeyVariable, name)
}

// NewDirectiveUnknownPartError creates an error for a conditional directive
// whose show or else attribute names a part that does not exist.
func NewDirectiveUnknownPartError(name string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgDirectiveNoPart+": "+name).
		WithMetadata(MetaKeyPart, name)
}

// NewMissingRequiredVariableError creates an error for a required variable
// that has no value in the render input.
func NewMissingRequiredVariableError(name string) error {
	return cuserr.NewValidationError(ErrCodeRender, ErrMsgMissingRequiredVar+": "+name).
		WithMetadata(MetaKeyVariable, name)
}

// NewParseError creates a document parse error with an optional cause.
func NewParseError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeParse, msg)
	}
	return cuserr.NewValidationError(ErrCodeParse, msg)
}

// NewSerializeError creates a serialization error with an optional cause.
func NewSerializeError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeSerialize, msg)
	}
	return cuserr.NewValidationError(ErrCodeSerialize, msg)
}

// NewNoStorageError creates an error for storage operations on an engine
// configured without a storage backend.
func NewNoStorageError() error {
	return cuserr.NewValidationError(ErrCodeStorage, ErrMsgNoStorage)
}

// wrapOperationError wraps an inner failure exactly once at the facade
// boundary. The resulting message is "<prefix>: <root cause>" so no
// diagnostic information is lost, while the concrete error kind of the
// cause is erased behind the single prompt-error kind exposed to callers.
func wrapOperationError(prefix string, code string, cause error) error {
	return cuserr.WrapStdError(cause, code, prefix+": "+cause.Error()).
		WithMetadata(MetaKeyOperation, prefix)
}
