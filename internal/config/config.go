package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/taplog/config.yaml"

// Config holds all taplog configuration. Values come from the YAML
// file first, then TAPLOG_* environment variables on top.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Labels  LabelsConfig  `yaml:"labels"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

type StorageConfig struct {
	Path       string `yaml:"path" env:"TAPLOG_DATA_DIR"`
	EventsFile string `yaml:"events_file" env:"TAPLOG_EVENTS_FILE"`
}

type LabelsConfig struct {
	File string `yaml:"file" env:"TAPLOG_LABELS_FILE"`
}

type ExportConfig struct {
	Dir string `yaml:"dir" env:"TAPLOG_EXPORT_DIR"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"TAPLOG_LOG_LEVEL"`
}

// Load reads a YAML config file at path, merges it with defaults, and
// applies environment overrides. Returns an error if the file cannot
// be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	return cfg, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file
// does not exist, it creates the directory structure and writes
// defaults.
func LoadOrCreate() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file
// does not exist, it creates the directory structure and writes
// defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		if err := env.Parse(cfg); err != nil {
			return nil, fmt.Errorf("applying environment overrides: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}

// EventsPath resolves the absolute path of the persisted event
// document.
func (c *Config) EventsPath() (string, error) {
	dir, err := expandPath(c.Storage.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Storage.EventsFile), nil
}

// LabelsPath resolves the absolute path of the label preferences file.
func (c *Config) LabelsPath() (string, error) {
	dir, err := expandPath(c.Storage.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Labels.File), nil
}

// ExportDir resolves the directory CSV exports are written to.
func (c *Config) ExportDir() (string, error) {
	return expandPath(c.Export.Dir)
}
