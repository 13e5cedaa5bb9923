package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meuse24/taplog/internal/config"
	"github.com/meuse24/taplog/internal/journal"
	"github.com/meuse24/taplog/internal/share"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	svc, cfg, err := c.globals.openService()
	if err != nil {
		return err
	}
	return c.executeWith(svc, cfg)
}

// executeWith exports against provided collaborators (used by tests).
func (c *ExportCommand) executeWith(svc *journal.Service, cfg *config.Config) error {
	if c.Stdout {
		text, _ := svc.ExportCSV()
		fmt.Print(text)
		return nil
	}

	dir := c.Dir
	if dir == "" {
		var err error
		dir, err = cfg.ExportDir()
		if err != nil {
			return err
		}
	}

	count := len(svc.Events())
	path, mimeType, err := svc.WriteExport(dir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	sharer := c.sharer
	if sharer == nil {
		sharer = share.Console{W: os.Stdout}
	}
	if err := sharer.ShareFile(path, mimeType); err != nil {
		return fmt.Errorf("share handoff failed: %w", err)
	}

	if c.globals.JSON {
		out := map[string]interface{}{
			"path":      path,
			"mime_type": mimeType,
			"events":    count,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Exported %d events to %s\n", count, path)
	return nil
}
