package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/ffdev-info/combiner/internal/cmd/base"
	"github.com/ffdev-info/combiner/internal/cmd/commands/combine"
	"github.com/ffdev-info/combiner/internal/cmd/commands/lint"
	versioncmd "github.com/ffdev-info/combiner/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	Commands = map[string]cli.CommandFactory{
		"combine": func() (cli.Command, error) {
			return &combine.Command{
				Command: base.NewCommand(log.Named("combine"), ui),
			}, nil
		},
		"lint": func() (cli.Command, error) {
			return &lint.Command{
				Command: base.NewCommand(log.Named("lint"), ui),
			}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{
				Command: base.NewCommand(log, ui),
			}, nil
		},
	}
}
