package oneprompt

// Variable token delimiters - the {{ }} syntax used inside template bodies
const (
	TokenOpenDelim  = "{{"
	TokenCloseDelim = "}}"
)

// XML element names for the document markup
const (
	ElemPrompt   = "prompt"
	ElemMetadata = "metadata"
	ElemVars     = "variables"
	ElemVar      = "var"
	ElemPart     = "part"
	ElemTemplate = "template"
	ElemTitle    = "title"
	ElemIf       = "if"
)

// Attribute name constants
const (
	AttrName     = "name"
	AttrRequired = "required"
	AttrVar      = "var"
	AttrEquals   = "equals"
	AttrShow     = "show"
	AttrElse     = "else"
)

// Boolean attribute values
const (
	AttrValueTrue  = "true"
	AttrValueFalse = "false"
)

// MetadataKeyTitle is the single required metadata field.
const MetadataKeyTitle = "title"

// XML serialization constants
const (
	// XMLProlog is emitted as the first line of every serialized document.
	XMLProlog = `<?xml version="1.0" encoding="UTF-8"?>`

	// XMLIndentSpaces is the indentation width for serialized documents.
	XMLIndentSpaces = 2
)

// Error metadata keys attached to structured errors
const (
	MetaKeyVariable  = "variable"
	MetaKeyPart      = "part"
	MetaKeyField     = "field"
	MetaKeyDirective = "directive"
	MetaKeyOperation = "operation"
	MetaKeyName      = "name"
	MetaKeyDriver    = "driver"
)

// Log message constants for pipeline debug logging
const (
	LogMsgRenderStart        = "render started"
	LogMsgRenderComplete     = "render complete"
	LogMsgVariablesResolved  = "variables resolved"
	LogMsgConditionalApplied = "conditional directive applied"
	LogMsgDocumentParsed     = "document parsed"
	LogMsgDocumentSerialized = "document serialized"
)

// Log field name constants
const (
	LogFieldTitle     = "title"
	LogFieldVariables = "variables"
	LogFieldParts     = "parts"
	LogFieldDirective = "directive"
	LogFieldShowPart  = "show_part"
	LogFieldBytes     = "bytes"
	LogFieldName      = "name"
)
