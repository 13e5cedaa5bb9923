package storage

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used by tests and fakes. The error
// fields force the corresponding operation to fail when set.
type MemStore struct {
	mu     sync.Mutex
	events []Event
	exists bool

	LoadErr   error
	SaveErr   error
	DeleteErr error
}

// NewMemStore creates an empty MemStore with no stored document.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load(ctx context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if !s.exists {
		return []Event{}, nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *MemStore) Save(ctx context.Context, events []Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.events = make([]Event, len(events))
	copy(s.events, events)
	s.exists = true
	return nil
}

func (s *MemStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.events = nil
	s.exists = false
	return nil
}

// Exists reports whether a document is currently stored.
func (s *MemStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exists
}

// Stored returns a copy of the persisted events.
func (s *MemStore) Stored() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Seed replaces the stored document, marking it present.
func (s *MemStore) Seed(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make([]Event, len(events))
	copy(s.events, events)
	s.exists = true
}
