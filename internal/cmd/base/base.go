// Package base carries the pieces shared by every CLI command: the
// configured logger, the UI, and a flag set that knows how to render its
// own help text.
package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by every CLI command implementation.
type Command struct {
	// Log is the process logger, named per command.
	Log hclog.Logger

	// UI is the command-line UI for operator-facing output.
	UI cli.Ui
}

// NewCommand returns a Command wired with the given logger and UI.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
	}
}

// FlagSet wraps flag.FlagSet with help rendering suitable for inclusion in
// a command's Help output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the flag set as an indented options block.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s\n      %s", fl.Name, fl.Usage)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
	})
	return b.String()
}
