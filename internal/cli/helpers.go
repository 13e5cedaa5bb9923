package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/meuse24/taplog/internal/config"
	"github.com/meuse24/taplog/internal/journal"
	"github.com/meuse24/taplog/internal/prefs"
	"github.com/meuse24/taplog/internal/storage"
)

// loadConfig resolves the config file (default path unless --config)
// and applies the --data-dir override.
func (g *GlobalFlags) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if g.Config != "" {
		cfg, err = config.LoadOrCreateAt(g.Config)
	} else {
		cfg, err = config.LoadOrCreate()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if g.DataDir != "" {
		cfg.Storage.Path = g.DataDir
	}
	return cfg, nil
}

// newLogger builds the logger from the configured level; --verbose
// forces debug.
func (g *GlobalFlags) newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if g.Verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return log
}

// openService loads the persisted log into a ready journal service. A
// load failure is surfaced as a warning and cleared; the session then
// starts from an empty log.
func (g *GlobalFlags) openService() (*journal.Service, *config.Config, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	path, err := cfg.EventsPath()
	if err != nil {
		return nil, nil, err
	}

	svc := journal.New(storage.NewFileStore(path), g.newLogger(cfg))
	svc.Load(context.Background())
	warnAndClear(svc)
	return svc, cfg, nil
}

// openLabels builds the label store for the configured data directory.
func (g *GlobalFlags) openLabels(cfg *config.Config) (*prefs.Labels, error) {
	path, err := cfg.LabelsPath()
	if err != nil {
		return nil, err
	}
	return prefs.NewLabels(prefs.NewFileKV(path)), nil
}

// warnAndClear surfaces the stored service error on stderr and
// dismisses it, the CLI's stand-in for a transient notification.
func warnAndClear(svc *journal.Service) {
	if opErr := svc.Err(); opErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", opErr)
		svc.ClearError()
	}
}

// finish joins background persistence and reports its outcome. The
// in-memory mutation already succeeded; a failure here is a warning,
// not a command error.
func finish(svc *journal.Service) {
	svc.Wait()
	warnAndClear(svc)
}

// formatBytes formats a byte count into a human-readable string.
func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
