package oneprompt

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of PromptStorage.
// It is primarily intended for testing and development.
// All data is lost when the process terminates.
type MemoryStorage struct {
	mu      sync.RWMutex
	prompts map[string]*StoredPrompt
	closed  bool
}

// MemoryStorageDriver is the driver for creating MemoryStorage instances.
type MemoryStorageDriver struct{}

func init() {
	RegisterStorageDriver(StorageDriverNameMemory, &MemoryStorageDriver{})
}

// Open creates a new MemoryStorage instance.
// The connection string is ignored for memory storage.
func (d *MemoryStorageDriver) Open(connectionString string) (PromptStorage, error) {
	return NewMemoryStorage(), nil
}

// NewMemoryStorage creates a new in-memory prompt storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		prompts: make(map[string]*StoredPrompt),
	}
}

// Get retrieves a stored prompt by name.
func (s *MemoryStorage) Get(ctx context.Context, name string) (*StoredPrompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	prompt, ok := s.prompts[name]
	if !ok {
		return nil, NewPromptNotFoundError(name)
	}

	return copyStoredPrompt(prompt), nil
}

// Save stores a prompt, replacing any existing prompt with the same name.
func (s *MemoryStorage) Save(ctx context.Context, prompt *StoredPrompt) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if prompt.Name == "" {
		return &StorageError{Message: ErrMsgInvalidPromptName}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	now := time.Now()
	stored := copyStoredPrompt(prompt)

	if existing, ok := s.prompts[prompt.Name]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = generatePromptID()
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	s.prompts[prompt.Name] = stored

	// Reflect generated fields back to the caller's value
	prompt.ID = stored.ID
	prompt.CreatedAt = stored.CreatedAt
	prompt.UpdatedAt = stored.UpdatedAt

	return nil
}

// Delete removes a prompt by name.
func (s *MemoryStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	if _, ok := s.prompts[name]; !ok {
		return NewPromptNotFoundError(name)
	}

	delete(s.prompts, name)
	return nil
}

// List returns prompts matching the query, ordered by name.
func (s *MemoryStorage) List(ctx context.Context, query *PromptQuery) ([]*StoredPrompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	if query == nil {
		query = &PromptQuery{}
	}

	var results []*StoredPrompt
	for _, prompt := range s.prompts {
		if matchesPromptQuery(prompt, query) {
			results = append(results, copyStoredPrompt(prompt))
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	if query.Offset > 0 {
		if query.Offset >= len(results) {
			return []*StoredPrompt{}, nil
		}
		results = results[query.Offset:]
	}
	if query.Limit > 0 && len(results) > query.Limit {
		results = results[:query.Limit]
	}

	return results, nil
}

// Exists checks if a prompt with the given name exists.
func (s *MemoryStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStorageClosedError()
	}

	_, ok := s.prompts[name]
	return ok, nil
}

// Close marks the storage as closed.
func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.prompts = nil
	return nil
}
