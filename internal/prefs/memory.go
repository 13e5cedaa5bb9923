package prefs

import "sync"

// MemKV is an in-memory KV used by tests. SetErr forces SetAll to fail
// without storing anything.
type MemKV struct {
	mu     sync.Mutex
	values map[string]string

	SetErr error
}

// NewMemKV creates an empty MemKV.
func NewMemKV() *MemKV {
	return &MemKV{values: map[string]string{}}
}

func (s *MemKV) Get(key, fallback string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return fallback
	}
	return v
}

func (s *MemKV) SetAll(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	for k, v := range values {
		s.values[k] = v
	}
	return nil
}
