package oneprompt

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FilesystemStorage stores prompts as XML documents on the filesystem.
// Each prompt is a <name>.xml file holding the raw document source plus a
// <name>.meta.json sidecar holding the generated ID, user metadata, tags
// and timestamps.
//
// Directory structure:
//
//	<root>/
//	  greeting.xml
//	  greeting.meta.json
//	  ...
type FilesystemStorage struct {
	mu     sync.RWMutex
	root   string
	closed bool
}

// Filesystem storage constants
const (
	FilesystemDirPermissions  = 0755
	FilesystemFilePermissions = 0644
	FilesystemSourceSuffix    = ".xml"
	FilesystemMetaSuffix      = ".meta.json"
)

// Additional storage error messages
const (
	ErrMsgInvalidStorageRoot    = "invalid storage root path"
	ErrMsgCreateStorageDir      = "failed to create storage directory"
	ErrMsgReadStorageDir        = "failed to read storage directory"
	ErrMsgMarshalMeta           = "failed to marshal prompt metadata"
	ErrMsgUnmarshalMeta         = "failed to unmarshal prompt metadata"
	ErrMsgWritePrompt           = "failed to write prompt file"
	ErrMsgReadPrompt            = "failed to read prompt file"
	ErrMsgDeletePrompt          = "failed to delete prompt"
	ErrMsgPathTraversalDetected = "path traversal detected in prompt name"
)

// filesystemMeta is the sidecar file structure.
type filesystemMeta struct {
	ID        PromptID          `json:"id"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// FilesystemStorageDriver is the driver for creating FilesystemStorage instances.
type FilesystemStorageDriver struct{}

func init() {
	RegisterStorageDriver(StorageDriverNameFilesystem, &FilesystemStorageDriver{})
}

// Open creates a new FilesystemStorage instance.
// The connection string is the root directory path.
func (d *FilesystemStorageDriver) Open(connectionString string) (PromptStorage, error) {
	return NewFilesystemStorage(connectionString)
}

// NewFilesystemStorage creates a new filesystem-based prompt storage.
// The root directory will be created if it doesn't exist.
func NewFilesystemStorage(root string) (*FilesystemStorage, error) {
	if root == "" {
		return nil, &StorageError{Message: ErrMsgInvalidStorageRoot}
	}

	if err := os.MkdirAll(root, FilesystemDirPermissions); err != nil {
		return nil, &StorageError{
			Message: ErrMsgCreateStorageDir,
			Name:    root,
			Cause:   err,
		}
	}

	return &FilesystemStorage{root: root}, nil
}

// Get retrieves a stored prompt by name.
func (s *FilesystemStorage) Get(ctx context.Context, name string) (*StoredPrompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validatePromptNameForFilesystem(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	return s.loadPrompt(name)
}

// Save stores a prompt, replacing any existing prompt with the same name.
func (s *FilesystemStorage) Save(ctx context.Context, prompt *StoredPrompt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePromptNameForFilesystem(prompt.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	now := time.Now()
	meta := filesystemMeta{
		ID:        generatePromptID(),
		Metadata:  prompt.Metadata,
		Tags:      prompt.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Preserve identity and creation time across overwrites
	if existing, err := s.loadMeta(prompt.Name); err == nil {
		meta.ID = existing.ID
		meta.CreatedAt = existing.CreatedAt
	}

	sourcePath := s.sourcePath(prompt.Name)
	if err := os.WriteFile(sourcePath, []byte(prompt.Source), FilesystemFilePermissions); err != nil {
		return &StorageError{Message: ErrMsgWritePrompt, Name: sourcePath, Cause: err}
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return &StorageError{Message: ErrMsgMarshalMeta, Name: prompt.Name, Cause: err}
	}
	metaPath := s.metaPath(prompt.Name)
	if err := os.WriteFile(metaPath, data, FilesystemFilePermissions); err != nil {
		return &StorageError{Message: ErrMsgWritePrompt, Name: metaPath, Cause: err}
	}

	prompt.ID = meta.ID
	prompt.CreatedAt = meta.CreatedAt
	prompt.UpdatedAt = meta.UpdatedAt

	return nil
}

// Delete removes a prompt by name.
func (s *FilesystemStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePromptNameForFilesystem(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	sourcePath := s.sourcePath(name)
	if _, err := os.Stat(sourcePath); err != nil {
		if os.IsNotExist(err) {
			return NewPromptNotFoundError(name)
		}
		return &StorageError{Message: ErrMsgReadPrompt, Name: sourcePath, Cause: err}
	}

	if err := os.Remove(sourcePath); err != nil {
		return &StorageError{Message: ErrMsgDeletePrompt, Name: sourcePath, Cause: err}
	}
	// The sidecar may be missing for hand-placed files
	_ = os.Remove(s.metaPath(name))

	return nil
}

// List returns prompts matching the query, ordered by name.
func (s *FilesystemStorage) List(ctx context.Context, query *PromptQuery) ([]*StoredPrompt, error) {
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

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, &StorageError{Message: ErrMsgReadStorageDir, Name: s.root, Cause: err}
	}

	var results []*StoredPrompt
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FilesystemSourceSuffix) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), FilesystemSourceSuffix)

		prompt, err := s.loadPrompt(name)
		if err != nil {
			continue
		}
		if matchesPromptQuery(prompt, query) {
			results = append(results, prompt)
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
func (s *FilesystemStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := validatePromptNameForFilesystem(name); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStorageClosedError()
	}

	_, err := os.Stat(s.sourcePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &StorageError{Message: ErrMsgReadPrompt, Name: name, Cause: err}
	}
	return true, nil
}

// Close marks the storage as closed.
func (s *FilesystemStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// sourcePath returns the path of a prompt's XML document file.
func (s *FilesystemStorage) sourcePath(name string) string {
	return filepath.Join(s.root, name+FilesystemSourceSuffix)
}

// metaPath returns the path of a prompt's metadata sidecar file.
func (s *FilesystemStorage) metaPath(name string) string {
	return filepath.Join(s.root, name+FilesystemMetaSuffix)
}

// loadPrompt reads a prompt's source and sidecar from disk.
// Missing sidecars are tolerated so hand-placed .xml files are usable.
func (s *FilesystemStorage) loadPrompt(name string) (*StoredPrompt, error) {
	source, err := os.ReadFile(s.sourcePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewPromptNotFoundError(name)
		}
		return nil, &StorageError{Message: ErrMsgReadPrompt, Name: name, Cause: err}
	}

	prompt := &StoredPrompt{
		Name:   name,
		Source: string(source),
	}

	if meta, err := s.loadMeta(name); err == nil {
		prompt.ID = meta.ID
		prompt.Metadata = meta.Metadata
		prompt.Tags = meta.Tags
		prompt.CreatedAt = meta.CreatedAt
		prompt.UpdatedAt = meta.UpdatedAt
	}

	return prompt, nil
}

// loadMeta reads a prompt's sidecar file.
func (s *FilesystemStorage) loadMeta(name string) (*filesystemMeta, error) {
	data, err := os.ReadFile(s.metaPath(name))
	if err != nil {
		return nil, &StorageError{Message: ErrMsgReadPrompt, Name: name, Cause: err}
	}

	var meta filesystemMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, &StorageError{Message: ErrMsgUnmarshalMeta, Name: name, Cause: err}
	}
	return &meta, nil
}

// validatePromptNameForFilesystem validates a prompt name for filesystem
// safety. Prevents path traversal and invalid filesystem characters.
func validatePromptNameForFilesystem(name string) error {
	if name == "" {
		return &StorageError{Message: ErrMsgInvalidPromptName}
	}
	if strings.Contains(name, "..") {
		return &StorageError{Message: ErrMsgPathTraversalDetected, Name: name}
	}
	if strings.ContainsAny(name, "/\\:*?\"<>|") {
		return &StorageError{Message: ErrMsgInvalidPromptName, Name: name}
	}
	return nil
}

// Ensure FilesystemStorage implements PromptStorage
var _ PromptStorage = (*FilesystemStorage)(nil)
