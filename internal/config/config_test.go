package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "~/.config/taplog", cfg.Storage.Path)
	assert.Equal(t, "events.json", cfg.Storage.EventsFile)
	assert.Equal(t, "labels.yaml", cfg.Labels.File)
	assert.Equal(t, "~/.config/taplog/exports", cfg.Export.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
storage:
  path: /var/lib/taplog
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/taplog", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "events.json", cfg.Storage.EventsFile)
	assert.Equal(t, "labels.yaml", cfg.Labels.File)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadInvalidYAMLErrors(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage: [not: a map"), 0644))

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestEnvOverrideWinsOverYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  path: /from/yaml\n"), 0644))

	t.Setenv("TAPLOG_DATA_DIR", "/from/env")
	t.Setenv("TAPLOG_LOG_LEVEL", "debug")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadOrCreateAtWritesDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "events.json", cfg.Storage.EventsFile)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "events_file: events.json")

	// Second call loads the file it just wrote.
	again, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestEventsPathJoinsStorageDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Path = "/data/taplog"

	path, err := cfg.EventsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/taplog", "events.json"), path)
}

func TestLabelsPathJoinsStorageDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Path = "/data/taplog"

	path, err := cfg.LabelsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/taplog", "labels.yaml"), path)
}

func TestExpandPathReplacesTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, err := expandPath("~/.config/taplog")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "taplog"), path)

	// Absolute paths pass through.
	path, err = expandPath("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", path)
}
