package oneprompt

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Engine is the main entry point for the oneprompt document system. It
// sequences the core operations - validate, parse, serialize, render - and
// wraps every inner failure exactly once with a uniform operation-prefixed
// error. An Engine holds no mutable state beyond its configuration and is
// safe for concurrent use.
type Engine struct {
	config *engineConfig
	logger *zap.Logger
}

// New creates a new oneprompt Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Validate checks a document's internal consistency. Failures are reported
// as a prompt error prefixed with "Validation failed".
func (e *Engine) Validate(doc *Document) error {
	if err := ValidateDocument(doc); err != nil {
		return wrapOperationError(OpPrefixValidate, ErrCodeValidation, err)
	}
	return nil
}

// Parse parses XML text into a validated Document. Failures - malformed
// markup as well as validation errors in the parsed document - are reported
// as a prompt error prefixed with "Parse failed".
func (e *Engine) Parse(source string) (*Document, error) {
	doc, err := ParseDocument(source)
	if err != nil {
		return nil, wrapOperationError(OpPrefixParse, ErrCodeParse, err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, wrapOperationError(OpPrefixParse, ErrCodeParse, err)
	}

	e.logger.Debug(LogMsgDocumentParsed,
		zap.String(LogFieldTitle, doc.Title()),
		zap.Int(LogFieldVariables, len(doc.Variables)),
		zap.Int(LogFieldParts, len(doc.Parts)))

	return doc, nil
}

// ToXML validates a document and serializes it back to XML text with the
// standard prolog line. Failures are reported as a prompt error prefixed
// with "Conversion to XML failed".
func (e *Engine) ToXML(doc *Document) (string, error) {
	if err := ValidateDocument(doc); err != nil {
		return "", wrapOperationError(OpPrefixSerialize, ErrCodeSerialize, err)
	}

	out, err := SerializeDocument(doc)
	if err != nil {
		return "", wrapOperationError(OpPrefixSerialize, ErrCodeSerialize, err)
	}

	e.logger.Debug(LogMsgDocumentSerialized,
		zap.String(LogFieldTitle, doc.Title()),
		zap.Int(LogFieldBytes, len(out)))

	return out, nil
}

// Render validates the document, resolves its variables against the input
// values, applies conditional directives to the whitespace-trimmed template,
// and substitutes variable tokens. The document is not mutated. Failures are
// reported as a prompt error prefixed with "Render failed".
func (e *Engine) Render(doc *Document, input InputValues) (string, error) {
	out, err := e.render(doc, input)
	if err != nil {
		return "", wrapOperationError(OpPrefixRender, ErrCodeRender, err)
	}
	return out, nil
}

// RenderSource parses raw XML text and renders the resulting document in a
// single step. Failures are reported as a prompt error prefixed with
// "Render failed".
func (e *Engine) RenderSource(source string, input InputValues) (string, error) {
	doc, err := ParseDocument(source)
	if err != nil {
		return "", wrapOperationError(OpPrefixRender, ErrCodeRender, err)
	}
	out, err := e.render(doc, input)
	if err != nil {
		return "", wrapOperationError(OpPrefixRender, ErrCodeRender, err)
	}
	return out, nil
}

// render runs the validate -> resolve -> conditionals -> substitute pipeline
// without facade wrapping.
func (e *Engine) render(doc *Document, input InputValues) (string, error) {
	if err := ValidateDocument(doc); err != nil {
		return "", err
	}

	e.logger.Debug(LogMsgRenderStart, zap.String(LogFieldTitle, doc.Title()))

	resolved, err := ResolveVariables(doc.Variables, input)
	if err != nil {
		return "", err
	}
	e.logger.Debug(LogMsgVariablesResolved, zap.Int(LogFieldVariables, len(resolved)))

	out := ProcessConditionals(strings.TrimSpace(doc.Template), resolved, doc.Parts)
	out = SubstituteVariables(out, resolved)

	e.logger.Debug(LogMsgRenderComplete, zap.Int(LogFieldBytes, len(out)))
	return out, nil
}

// SavePrompt validates the given XML source and stores it under a name in
// the configured storage backend.
func (e *Engine) SavePrompt(ctx context.Context, name, source string) (*StoredPrompt, error) {
	if e.config.storage == nil {
		return nil, wrapOperationError(OpPrefixStorage, ErrCodeStorage, NewNoStorageError())
	}

	doc, err := ParseDocument(source)
	if err != nil {
		return nil, wrapOperationError(OpPrefixStorage, ErrCodeStorage, err)
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, wrapOperationError(OpPrefixStorage, ErrCodeStorage, err)
	}

	stored := &StoredPrompt{
		Name:   name,
		Source: source,
	}
	if err := e.config.storage.Save(ctx, stored); err != nil {
		return nil, wrapOperationError(OpPrefixStorage, ErrCodeStorage, err)
	}
	return stored, nil
}

// GetPrompt retrieves a stored prompt by name from the configured storage
// backend.
func (e *Engine) GetPrompt(ctx context.Context, name string) (*StoredPrompt, error) {
	if e.config.storage == nil {
		return nil, wrapOperationError(OpPrefixStorage, ErrCodeStorage, NewNoStorageError())
	}

	stored, err := e.config.storage.Get(ctx, name)
	if err != nil {
		return nil, wrapOperationError(OpPrefixStorage, ErrCodeStorage, err)
	}
	return stored, nil
}

// ListPrompts returns stored prompts matching the query.
func (e *Engine) ListPrompts(ctx context.Context, query *PromptQuery) ([]*StoredPrompt, error) {
	if e.config.storage == nil {
		return nil, wrapOperationError(OpPrefixStorage, ErrCodeStorage, NewNoStorageError())
	}

	prompts, err := e.config.storage.List(ctx, query)
	if err != nil {
		return nil, wrapOperationError(OpPrefixStorage, ErrCodeStorage, err)
	}
	return prompts, nil
}

// RenderStored loads a prompt by name from the configured storage backend
// and renders it with the given input values.
func (e *Engine) RenderStored(ctx context.Context, name string, input InputValues) (string, error) {
	if e.config.storage == nil {
		return "", wrapOperationError(OpPrefixRender, ErrCodeRender, NewNoStorageError())
	}

	stored, err := e.config.storage.Get(ctx, name)
	if err != nil {
		return "", wrapOperationError(OpPrefixRender, ErrCodeRender, err)
	}
	return e.RenderSource(stored.Source, input)
}
