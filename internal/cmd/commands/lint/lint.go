package lint

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/ffdev-info/combiner/internal/cmd/base"
	"github.com/ffdev-info/combiner/internal/config"
	"github.com/ffdev-info/combiner/pkg/merge"
	"github.com/ffdev-info/combiner/pkg/sigfile"
)

type Command struct {
	*base.Command

	flagPath   string
	flagConfig string
	flagDebug  bool
}

func (c *Command) Synopsis() string {
	return "Check signature files without combining them"
}

func (c *Command) Help() string {
	return `Usage: combiner lint -path <dir>

  This command checks every signature file under the given directory for the
  problems that would abort a combine run: malformed PUIDs, duplicate PUIDs
  or internal signature IDs within a document, dangling internal signature
  references, and PUIDs under unrecognized authority namespaces. Unlike
  combine, it reports all findings instead of stopping at the first.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("lint", flag.ExitOnError))

	f.StringVar(
		&c.flagPath, "path", "",
		"(Required) Directory where the signature files are.",
	)
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to an HCL configuration file.",
	)
	f.BoolVar(
		&c.flagDebug, "debug", false,
		"Use debug logging.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagDebug {
		logger.SetLevel(hclog.Debug)
	}

	if c.flagPath == "" {
		ui.Error("path flag is required")
		return 1
	}

	cfg, err := config.NewConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}

	docs, err := sigfile.NewManifest(afero.NewOsFs(), c.flagPath, logger)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading signature files: %v", err))
		return 1
	}
	if len(docs) == 0 {
		ui.Info("no signature files were processed")
		return 0
	}

	if err := merge.LintAll(docs, cfg.CustomToken, cfg.Authorities); err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Info(fmt.Sprintf("%d signature files checked, no problems found", len(docs)))
	return 0
}
