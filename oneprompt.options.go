package oneprompt

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	logger  *zap.Logger
	storage PromptStorage
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		logger:  nil,
		storage: nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithStorage attaches a prompt storage backend to the engine, enabling
// SavePrompt, GetPrompt, ListPrompts and RenderStored.
// Default: nil (no storage)
func WithStorage(storage PromptStorage) Option {
	return func(c *engineConfig) {
		c.storage = storage
	}
}
