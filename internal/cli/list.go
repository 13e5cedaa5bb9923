package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meuse24/taplog/internal/journal"
)

type eventJSON struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type listJSON struct {
	Count  int         `json:"count"`
	Events []eventJSON `json:"events"`
}

// Execute implements the go-flags Commander interface for ListCommand.
func (c *ListCommand) Execute(args []string) error {
	svc, _, err := c.globals.openService()
	if err != nil {
		return err
	}
	return c.executeWith(svc)
}

// executeWith prints the display-ordered log (used by tests).
func (c *ListCommand) executeWith(svc *journal.Service) error {
	events := svc.Display()
	if c.Limit > 0 && len(events) > c.Limit {
		events = events[:c.Limit]
	}

	if c.globals.JSON {
		out := listJSON{
			Count:  len(events),
			Events: make([]eventJSON, len(events)),
		}
		for i, e := range events {
			out.Events[i] = eventJSON{Type: e.Type, Timestamp: e.Timestamp}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(events) == 0 {
		fmt.Println("No events recorded.")
		return nil
	}

	eventWord := "events"
	if len(events) == 1 {
		eventWord = "event"
	}
	fmt.Printf("%d %s, newest first\n\n", len(events), eventWord)

	for i, e := range events {
		fmt.Printf("%3d. %s  %s\n", i+1, e.Timestamp, e.Type)
	}
	return nil
}
