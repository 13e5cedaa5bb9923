package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meuse24/taplog/internal/config"
	"github.com/meuse24/taplog/internal/journal"
	"github.com/meuse24/taplog/internal/prefs"
	"github.com/meuse24/taplog/internal/storage"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version      string `json:"version"`
	DocumentPath string `json:"document_path"`
	DocumentSize int64  `json:"document_size_bytes"`
	TotalEvents  int    `json:"total_events"`
	OldestEvent  string `json:"oldest_event,omitempty"`
	NewestEvent  string `json:"newest_event,omitempty"`
	Label1       string `json:"label_1"`
	Label2       string `json:"label_2"`
	ExportDir    string `json:"export_dir"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	svc, cfg, err := c.globals.openService()
	if err != nil {
		return err
	}

	labels, err := c.globals.openLabels(cfg)
	if err != nil {
		return err
	}
	return c.executeWith(svc, cfg, labels)
}

// executeWith prints status against provided collaborators (used by tests).
func (c *StatusCommand) executeWith(svc *journal.Service, cfg *config.Config, labels *prefs.Labels) error {
	events := svc.Events()
	oldest, newest := timeRange(events)

	docPath, err := cfg.EventsPath()
	if err != nil {
		return err
	}
	var docSize int64
	if info, statErr := os.Stat(docPath); statErr == nil {
		docSize = info.Size()
	}

	exportDir, err := cfg.ExportDir()
	if err != nil {
		return err
	}

	l1, _ := labels.Get(1)
	l2, _ := labels.Get(2)

	if c.globals != nil && c.globals.JSON {
		out := statusJSON{
			Version:      c.version,
			DocumentPath: docPath,
			DocumentSize: docSize,
			TotalEvents:  len(events),
			OldestEvent:  oldest,
			NewestEvent:  newest,
			Label1:       l1,
			Label2:       l2,
			ExportDir:    exportDir,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Taplog Status")
	fmt.Println("=============")
	fmt.Printf("Version:    %s\n", c.version)
	fmt.Printf("Document:   %s (%s)\n", docPath, formatBytes(docSize))
	fmt.Printf("Events:     %d\n", len(events))
	if len(events) > 0 {
		fmt.Printf("Oldest:     %s\n", oldest)
		fmt.Printf("Newest:     %s\n", newest)
	}
	fmt.Printf("Labels:     1=%q 2=%q\n", l1, l2)
	fmt.Printf("Export dir: %s\n", exportDir)

	return nil
}

// timeRange returns the smallest and largest timestamps in the log.
// Lexical comparison matches chronology for the stamp format.
func timeRange(events []storage.Event) (oldest, newest string) {
	for i, e := range events {
		if i == 0 || e.Timestamp < oldest {
			oldest = e.Timestamp
		}
		if i == 0 || e.Timestamp > newest {
			newest = e.Timestamp
		}
	}
	return oldest, newest
}
