package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileKV stores preferences as a flat YAML map in a single file. The
// file is read whole on every Get and rewritten whole on SetAll.
type FileKV struct {
	path string
	mu   sync.Mutex
}

// NewFileKV creates a FileKV at path. The file is created lazily on
// the first SetAll.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (s *FileKV) Get(key, fallback string) string {
	values, err := s.read()
	if err != nil {
		return fallback
	}
	v, ok := values[key]
	if !ok {
		return fallback
	}
	return v
}

func (s *FileKV) SetAll(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}
	for k, v := range values {
		current[k] = v
	}

	data, err := yaml.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

func (s *FileKV) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
