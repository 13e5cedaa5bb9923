package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store defines persistence for the event document.
type Store interface {
	Load(ctx context.Context) ([]Event, error)
	Save(ctx context.Context, events []Event) error
	Delete(ctx context.Context) error
}

// FileStore persists the event log as a single pretty-printed JSON
// array. The document is replaced wholesale on every save; a missing
// file means an empty log, and deleting the log removes the file
// rather than writing an empty array.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the event document. A missing file yields an empty log
// and no error. Unknown fields are ignored; missing fields come back
// as empty strings.
func (s *FileStore) Load(ctx context.Context) ([]Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Event{}, nil
		}
		return nil, fmt.Errorf("read event document: %w", err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse event document: %w", err)
	}

	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// Save replaces the whole document with the given events, creating the
// parent directory if needed.
func (s *FileStore) Save(ctx context.Context, events []Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encode event document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write event document: %w", err)
	}
	return nil
}

// Delete removes the event document. Deleting an absent document is
// not an error.
func (s *FileStore) Delete(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove event document: %w", err)
	}
	return nil
}
