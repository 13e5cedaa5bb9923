package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Tap    *TapCommand
	List   *ListCommand
	Remove *RemoveCommand
	Clear  *ClearCommand
	Export *ExportCommand
	Labels *LabelsCommand
	Status *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "taplog"
	parser.LongDescription = "Personal event journal: tap one of two labelled slots to record a timestamped event, then list, edit, and export the log."

	cmds := &commands{
		Tap:    &TapCommand{globals: &globals, version: version},
		List:   &ListCommand{globals: &globals, version: version},
		Remove: &RemoveCommand{globals: &globals, version: version},
		Clear:  &ClearCommand{globals: &globals, version: version},
		Export: &ExportCommand{globals: &globals, version: version},
		Labels: &LabelsCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("tap", "Record one event", "Record one event typed after a quick-add slot label, or an explicit --type.", cmds.Tap)
	parser.AddCommand("list", "Show the event log newest-first", "Show the event log sorted newest-first.", cmds.List)
	parser.AddCommand("remove", "Delete one event", "Delete the first event matching the given type and timestamp exactly.", cmds.Remove)
	parser.AddCommand("clear", "Delete ALL events", "Delete ALL events. Destructive operation with safety prompt.", cmds.Clear)
	parser.AddCommand("export", "Export the log as CSV", "Write the log as a CSV artifact and hand it to the share mechanism.", cmds.Export)
	parser.AddCommand("labels", "Show or update the quick-add labels", "Show the two quick-add slot labels, or update one or both.", cmds.Labels)
	parser.AddCommand("status", "Show log statistics", "Show event counts, time range, storage paths, and current labels.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the taplog CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("taplog %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
