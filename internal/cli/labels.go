package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meuse24/taplog/internal/prefs"
)

// Execute implements the go-flags Commander interface for LabelsCommand.
func (c *LabelsCommand) Execute(args []string) error {
	cfg, err := c.globals.loadConfig()
	if err != nil {
		return err
	}

	labels, err := c.globals.openLabels(cfg)
	if err != nil {
		return err
	}
	return c.executeWith(labels)
}

// executeWith shows or updates labels against a provided store (used by tests).
func (c *LabelsCommand) executeWith(labels *prefs.Labels) error {
	updated := c.One != nil || c.Two != nil
	if updated {
		l1, err := labels.Get(1)
		if err != nil {
			return err
		}
		l2, err := labels.Get(2)
		if err != nil {
			return err
		}

		if c.One != nil {
			l1 = *c.One
		}
		if c.Two != nil {
			l2 = *c.Two
		}

		// Both entries are rewritten in one call even when only one
		// slot changed.
		if err := labels.Set(l1, l2); err != nil {
			return fmt.Errorf("save labels: %w", err)
		}
	}

	l1, _ := labels.Get(1)
	l2, _ := labels.Get(2)

	if c.globals.JSON {
		out := map[string]interface{}{
			"label_1": l1,
			"label_2": l2,
			"updated": updated,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Slot 1: %q\n", l1)
	fmt.Printf("Slot 2: %q\n", l2)
	return nil
}
