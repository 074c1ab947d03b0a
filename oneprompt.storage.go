package oneprompt

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"sync"
	"time"
)

// PromptID is a unique identifier for a stored prompt.
// Uses prefixed random format (e.g., "prompt_6ByTSYmGzT2c").
type PromptID string

// StoredPrompt is a named prompt document held in a storage backend. Source
// is the raw XML text of the document; backends store it as-is and leave
// parsing to the engine.
type StoredPrompt struct {
	// ID is the unique identifier assigned by the storage backend.
	ID PromptID `json:"id"`

	// Name is the prompt name used for lookups. Saving an existing name
	// replaces the stored source.
	Name string `json:"name"`

	// Source is the raw XML document text.
	Source string `json:"source"`

	// Metadata contains arbitrary key-value pairs for user-defined data.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Tags for categorization and querying.
	Tags []string `json:"tags,omitempty"`

	// CreatedAt is when the prompt was first saved.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the prompt was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// PromptQuery defines filters for listing stored prompts.
type PromptQuery struct {
	// NamePrefix filters to names starting with this prefix.
	NamePrefix string

	// NameContains filters to names containing this substring.
	NameContains string

	// Tags filters to prompts having ALL specified tags.
	Tags []string

	// Limit is the maximum number of results (0 = no limit).
	Limit int

	// Offset is the number of results to skip (for pagination).
	Offset int
}

// PromptStorage is the interface for pluggable storage backends.
// Implementations must be safe for concurrent use.
type PromptStorage interface {
	// Get retrieves a stored prompt by name.
	// Returns a not-found error if the prompt doesn't exist.
	Get(ctx context.Context, name string) (*StoredPrompt, error)

	// Save stores a prompt. A prompt with the same name is replaced; its ID
	// and CreatedAt are preserved and UpdatedAt is refreshed. The prompt's
	// ID and timestamp fields are set by the storage implementation.
	Save(ctx context.Context, prompt *StoredPrompt) error

	// Delete removes a prompt by name.
	// Returns a not-found error if the prompt doesn't exist.
	Delete(ctx context.Context, name string) error

	// List returns prompts matching the query, ordered by name.
	List(ctx context.Context, query *PromptQuery) ([]*StoredPrompt, error)

	// Exists checks if a prompt with the given name exists.
	Exists(ctx context.Context, name string) (bool, error)

	// Close releases any resources held by the storage.
	// After Close, the storage should not be used.
	Close() error
}

// StorageDriver is a factory for creating storage instances.
// Drivers register themselves during init().
type StorageDriver interface {
	// Open creates a new storage instance with the given connection string.
	// The format of the connection string is driver-specific.
	Open(connectionString string) (PromptStorage, error)
}

// Storage driver registry
var (
	storageDriversMu sync.RWMutex
	storageDrivers   = make(map[string]StorageDriver)
)

// Storage driver name constants
const (
	StorageDriverNameMemory     = "memory"
	StorageDriverNameFilesystem = "filesystem"
	StorageDriverNamePostgres   = "postgres"
)

// RegisterStorageDriver registers a storage driver by name.
// This is typically called from a driver's init() function.
// Panics if a driver with the same name is already registered.
func RegisterStorageDriver(name string, driver StorageDriver) {
	storageDriversMu.Lock()
	defer storageDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilStorageDriver)
	}
	if _, exists := storageDrivers[name]; exists {
		panic(ErrMsgDriverAlreadyRegistered + ": " + name)
	}
	storageDrivers[name] = driver
}

// OpenStorage opens a storage connection using the named driver.
// The connection string format is driver-specific.
//
// Example:
//
//	storage, err := oneprompt.OpenStorage("memory", "")
//	storage, err := oneprompt.OpenStorage("filesystem", "/path/to/prompts")
func OpenStorage(driverName, connectionString string) (PromptStorage, error) {
	storageDriversMu.RLock()
	driver, ok := storageDrivers[driverName]
	storageDriversMu.RUnlock()

	if !ok {
		return nil, NewStorageDriverNotFoundError(driverName)
	}

	return driver.Open(connectionString)
}

// ListStorageDrivers returns the names of all registered storage drivers.
func ListStorageDrivers() []string {
	storageDriversMu.RLock()
	defer storageDriversMu.RUnlock()

	names := make([]string, 0, len(storageDrivers))
	for name := range storageDrivers {
		names = append(names, name)
	}
	return names
}

// Storage error message constants
const (
	ErrMsgNilStorageDriver        = "storage driver is nil"
	ErrMsgDriverAlreadyRegistered = "storage driver already registered"
	ErrMsgStorageDriverNotFound   = "storage driver not found"
	ErrMsgStorageClosed           = "storage is closed"
	ErrMsgPromptNotFound          = "prompt not found"
	ErrMsgInvalidPromptName       = "prompt name cannot be empty"
)

// StorageError represents a storage-related error.
type StorageError struct {
	Message string
	Name    string
	Cause   error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Name != "" {
		return e.Message + ": " + e.Name
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageDriverNotFoundError creates an error for a missing storage driver.
func NewStorageDriverNotFoundError(name string) error {
	return &StorageError{Message: ErrMsgStorageDriverNotFound, Name: name}
}

// NewPromptNotFoundError creates an error for a prompt absent from storage.
func NewPromptNotFoundError(name string) error {
	return &StorageError{Message: ErrMsgPromptNotFound, Name: name}
}

// NewStorageClosedError creates an error for operations on closed storage.
func NewStorageClosedError() error {
	return &StorageError{Message: ErrMsgStorageClosed}
}

// generatePromptID generates a unique prompt ID.
func generatePromptID() PromptID {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return PromptID("prompt_" + base64.RawURLEncoding.EncodeToString(b))
}

// copyStoredPrompt creates a deep copy of a StoredPrompt.
func copyStoredPrompt(p *StoredPrompt) *StoredPrompt {
	if p == nil {
		return nil
	}
	out := &StoredPrompt{
		ID:        p.ID,
		Name:      p.Name,
		Source:    p.Source,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Metadata != nil {
		out.Metadata = make(map[string]string, len(p.Metadata))
		for k, v := range p.Metadata {
			out.Metadata[k] = v
		}
	}
	if p.Tags != nil {
		out.Tags = make([]string, len(p.Tags))
		copy(out.Tags, p.Tags)
	}
	return out
}

// matchesPromptQuery checks if a stored prompt matches the query filters.
func matchesPromptQuery(p *StoredPrompt, query *PromptQuery) bool {
	if query.NamePrefix != "" && !strings.HasPrefix(p.Name, query.NamePrefix) {
		return false
	}
	if query.NameContains != "" && !strings.Contains(p.Name, query.NameContains) {
		return false
	}
	for _, tag := range query.Tags {
		if !containsString(p.Tags, tag) {
			return false
		}
	}
	return true
}

// containsString checks if a slice contains a string.
func containsString(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
