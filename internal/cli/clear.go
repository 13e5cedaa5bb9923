package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/meuse24/taplog/internal/journal"
)

// setService allows tests to inject a ready service.
func (c *ClearCommand) setService(svc *journal.Service) {
	c.svc = svc
}

// Execute implements the go-flags Commander interface for ClearCommand.
func (c *ClearCommand) Execute(args []string) error {
	// Confirmation prompt unless --force
	if !c.Force {
		fmt.Println("⚠ WARNING: This will permanently delete ALL recorded events.")
		fmt.Println()
		fmt.Println("This action cannot be undone.")
		fmt.Println()
		fmt.Print(`Type "CLEAR" to confirm: `)

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("aborted: no input received")
		}
		input := strings.TrimSpace(scanner.Text())
		if input != "CLEAR" {
			return fmt.Errorf("aborted: confirmation text did not match")
		}
	}

	svc := c.svc
	if svc == nil {
		var err error
		svc, _, err = c.globals.openService()
		if err != nil {
			return err
		}
	}

	return c.executeWith(svc)
}

// executeWith clears the log against a provided service (used by tests).
func (c *ClearCommand) executeWith(svc *journal.Service) error {
	svc.ClearAll()
	finish(svc)

	if c.globals.JSON {
		out := map[string]interface{}{
			"cleared": true,
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(out)
	}

	fmt.Println("Cleared all events. The log is empty.")
	return nil
}
