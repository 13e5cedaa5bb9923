package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSharer captures the handoff for inspection.
type recordingSharer struct {
	path     string
	mimeType string
	err      error
}

func (r *recordingSharer) ShareFile(path, mimeType string) error {
	r.path = path
	r.mimeType = mimeType
	return r.err
}

func TestExportWritesArtifactAndHandsOff(t *testing.T) {
	svc, cfg := testService(t)
	svc.Add("Coffee")
	svc.Add("Walk")
	svc.Wait()

	rec := &recordingSharer{}
	dir := t.TempDir()
	cmd := &ExportCommand{Dir: dir, globals: &GlobalFlags{}, sharer: rec}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(svc, cfg))
	})

	assert.Contains(t, output, "Exported 2 events")
	assert.Equal(t, "text/csv", rec.mimeType)
	assert.Equal(t, dir, filepath.Dir(rec.path))

	data, err := os.ReadFile(rec.path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Type,Timestamp\n")
	assert.Contains(t, text, "Coffee,2024-01-01T10:00:00\n")
	assert.Contains(t, text, "Walk,2024-01-01T10:01:00\n")
}

func TestExportStdoutPrintsCSV(t *testing.T) {
	svc, cfg := testService(t)
	svc.Add("Coffee")
	svc.Wait()

	cmd := &ExportCommand{Stdout: true, globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(svc, cfg))
	})

	assert.Equal(t, "Type,Timestamp\nCoffee,2024-01-01T10:00:00\n", output)
}

func TestExportUsesInsertionOrderNotDisplayOrder(t *testing.T) {
	svc, cfg := testService(t)

	// A clock running backwards makes insertion order disagree with
	// chronology.
	calls := 0
	svc.SetClock(func() time.Time {
		ts := time.Date(2024, 1, 1, 10, 30-calls, 0, 0, time.Local)
		calls++
		return ts
	})
	svc.Add("First")
	svc.Add("Second")
	svc.Wait()

	display := svc.Display()
	require.Equal(t, "First", display[0].Type)

	cmd := &ExportCommand{Stdout: true, globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(svc, cfg))
	})

	// The CSV keeps insertion order even though display reverses it.
	assert.Equal(t, "Type,Timestamp\nFirst,2024-01-01T10:30:00\nSecond,2024-01-01T10:29:00\n", output)
}

func TestExportDefaultDirFromConfig(t *testing.T) {
	svc, cfg := testService(t)
	svc.Add("Coffee")
	svc.Wait()

	rec := &recordingSharer{}
	cmd := &ExportCommand{globals: &GlobalFlags{}, sharer: rec}

	captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(svc, cfg))
	})

	exportDir, err := cfg.ExportDir()
	require.NoError(t, err)
	assert.Equal(t, exportDir, filepath.Dir(rec.path))
}

func TestExportJSONOutput(t *testing.T) {
	svc, cfg := testService(t)
	svc.Add("Coffee")
	svc.Wait()

	rec := &recordingSharer{}
	cmd := &ExportCommand{Dir: t.TempDir(), globals: &GlobalFlags{JSON: true}, sharer: rec}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(svc, cfg))
	})

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &out))
	assert.Equal(t, "text/csv", out["mime_type"])
	assert.Equal(t, float64(1), out["events"])
	assert.Equal(t, rec.path, out["path"])
}
