package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meuse24/taplog/internal/journal"
	"github.com/meuse24/taplog/internal/prefs"
)

// Execute implements the go-flags Commander interface for TapCommand.
func (c *TapCommand) Execute(args []string) error {
	svc, cfg, err := c.globals.openService()
	if err != nil {
		return err
	}

	labels, err := c.globals.openLabels(cfg)
	if err != nil {
		return err
	}

	return c.executeWith(svc, labels)
}

// executeWith records the tap against provided collaborators (used by tests).
func (c *TapCommand) executeWith(svc *journal.Service, labels *prefs.Labels) error {
	eventType := c.Type
	if eventType == "" {
		if c.Slot != 1 && c.Slot != 2 {
			return fmt.Errorf("--slot must be 1 or 2")
		}
		var err error
		eventType, err = labels.Get(c.Slot)
		if err != nil {
			return err
		}
	}

	ev := svc.Add(eventType)
	finish(svc)

	if c.globals.JSON {
		out := map[string]interface{}{
			"type":      ev.Type,
			"timestamp": ev.Timestamp,
			"events":    len(svc.Events()),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Recorded %q at %s\n", ev.Type, ev.Timestamp)
	return nil
}
