package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meuse24/taplog/internal/config"
	"github.com/meuse24/taplog/internal/journal"
	"github.com/meuse24/taplog/internal/prefs"
	"github.com/meuse24/taplog/internal/storage"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// feedStdin replaces stdin with the given text for the duration of the test.
func feedStdin(t *testing.T, text string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(text)
	require.NoError(t, err)
	w.Close()

	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = old })
}

// testService creates a loaded journal service over a temp-dir file
// store, with a deterministic clock advancing one minute per event.
func testService(t *testing.T) (*journal.Service, *config.Config) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Storage.Path = dir
	cfg.Export.Dir = filepath.Join(dir, "exports")

	path, err := cfg.EventsPath()
	require.NoError(t, err)

	svc := journal.New(storage.NewFileStore(path), nil)
	calls := 0
	svc.SetClock(func() time.Time {
		ts := time.Date(2024, 1, 1, 10, calls, 0, 0, time.Local)
		calls++
		return ts
	})
	svc.Load(context.Background())
	return svc, cfg
}

// testLabels creates a label store over an in-memory KV.
func testLabels(t *testing.T) *prefs.Labels {
	t.Helper()
	return prefs.NewLabels(prefs.NewMemKV())
}

func strPtr(s string) *string {
	return &s
}
