package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meuse24/taplog/internal/journal"
	"github.com/meuse24/taplog/internal/storage"
)

// Execute implements the go-flags Commander interface for RemoveCommand.
func (c *RemoveCommand) Execute(args []string) error {
	if c.Timestamp == "" {
		return fmt.Errorf("--timestamp is required for remove command")
	}

	svc, _, err := c.globals.openService()
	if err != nil {
		return err
	}
	return c.executeWith(svc)
}

// executeWith removes the event against a provided service (used by tests).
func (c *RemoveCommand) executeWith(svc *journal.Service) error {
	removed := svc.Remove(storage.Event{Type: c.Type, Timestamp: c.Timestamp})
	finish(svc)

	if c.globals.JSON {
		out := map[string]interface{}{
			"removed":   removed,
			"type":      c.Type,
			"timestamp": c.Timestamp,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if removed {
		fmt.Printf("Removed %q at %s\n", c.Type, c.Timestamp)
	} else {
		fmt.Println("No matching event found; log unchanged.")
	}
	return nil
}
