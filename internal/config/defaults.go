package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       "~/.config/taplog",
			EventsFile: "events.json",
		},
		Labels: LabelsConfig{
			File: "labels.yaml",
		},
		Export: ExportConfig{
			Dir: "~/.config/taplog/exports",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
