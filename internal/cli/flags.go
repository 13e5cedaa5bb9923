package cli

import (
	"github.com/meuse24/taplog/internal/journal"
	"github.com/meuse24/taplog/internal/share"
)

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	DataDir string `long:"data-dir" description:"Override the data directory" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// TapCommand — record one event from a quick-add slot or an explicit type.
type TapCommand struct {
	Slot int    `long:"slot" description:"Quick-add slot whose label becomes the event type (1 or 2)" default:"1"`
	Type string `long:"type" description:"Explicit event type, bypassing the slot labels"`

	globals *GlobalFlags
	version string
}

// ListCommand — print the log newest-first.
type ListCommand struct {
	Limit int `long:"limit" description:"Maximum events to print (0 = all)" default:"0"`

	globals *GlobalFlags
	version string
}

// RemoveCommand — delete one event by exact type and timestamp.
type RemoveCommand struct {
	Type      string `long:"type" description:"Event type"`
	Timestamp string `long:"timestamp" description:"Event timestamp, e.g. 2024-01-02T15:04:05 (required)"`

	globals *GlobalFlags
	version string
}

// ClearCommand — delete the whole log with safety confirmation.
type ClearCommand struct {
	Force bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
	svc     *journal.Service // injectable for testing; nil means open default
}

// ExportCommand — write the CSV artifact and hand it to the sharer.
type ExportCommand struct {
	Dir    string `long:"dir" description:"Override the export directory"`
	Stdout bool   `long:"stdout" description:"Print CSV text instead of writing a file"`

	globals *GlobalFlags
	version string
	sharer  share.Sharer // injectable for testing; nil means console
}

// LabelsCommand — show or update the two quick-add labels.
type LabelsCommand struct {
	One *string `long:"one" description:"New label for slot 1"`
	Two *string `long:"two" description:"New label for slot 2"`

	globals *GlobalFlags
	version string
}

// StatusCommand — log statistics, storage paths, and current labels.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}
