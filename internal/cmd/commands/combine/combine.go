package combine

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/ffdev-info/combiner/internal/cmd/base"
	"github.com/ffdev-info/combiner/internal/config"
	"github.com/ffdev-info/combiner/pkg/merge"
	"github.com/ffdev-info/combiner/pkg/sigfile"
)

type Command struct {
	*base.Command

	flagPath       string
	flagConfig     string
	flagPrefix     string
	flagStartIndex int
	flagOutput     string
	flagDebug      bool
}

func (c *Command) Synopsis() string {
	return "Combine development signature files into one"
}

func (c *Command) Help() string {
	return `Usage: combiner combine -path <dir>

  This command merges every signature file found under the given directory
  into a single signature file. Internal signature IDs are renumbered into
  one global sequence, custom-namespace PUIDs are reallocated into a
  contiguous prefixed sequence, and authority-issued PUIDs (fmt, x-fmt, ...)
  are passed through unchanged. Any PUID collision, malformed PUID, or
  dangling internal reference aborts the run and no output is written.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("combine", flag.ExitOnError))

	f.StringVar(
		&c.flagPath, "path", "",
		"(Required) Directory where the signature files are.",
	)
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to an HCL configuration file.",
	)
	f.StringVar(
		&c.flagPrefix, "prefix", "",
		"Prefix for custom PUIDs. Overrides the configuration file.",
	)
	f.IntVar(
		&c.flagStartIndex, "start-index", -1,
		"Integer from which to start the custom PUID index. Overrides the configuration file.",
	)
	f.StringVar(
		&c.flagOutput, "output", "",
		"File to write the combined signature file to, or '-' for stdout.",
	)
	f.BoolVar(
		&c.flagDebug, "debug", false,
		"Use debug logging.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagDebug {
		logger.SetLevel(hclog.Debug)
		logger.Debug("debug logging is configured")
	}

	// Validate flags.
	if c.flagPath == "" {
		ui.Error("path flag is required")
		return 1
	}

	// Parse configuration, then apply flag overrides.
	cfg, err := config.NewConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}
	if c.flagPrefix != "" {
		cfg.Prefix = c.flagPrefix
	}
	if c.flagStartIndex >= 0 {
		cfg.StartIndex = c.flagStartIndex
	}
	if c.flagOutput != "" {
		cfg.Output = c.flagOutput
	}
	if err := cfg.Validate(); err != nil {
		ui.Error(fmt.Sprintf("invalid configuration: %v", err))
		return 1
	}

	fs := afero.NewOsFs()
	docs, err := sigfile.NewManifest(fs, c.flagPath, logger)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading signature files: %v", err))
		return 1
	}
	if len(docs) == 0 {
		ui.Info("no signature files were processed")
		return 0
	}

	merged, err := merge.Combine(docs, merge.Options{
		Prefix:      cfg.Prefix,
		StartIndex:  cfg.StartIndex,
		CustomToken: cfg.CustomToken,
		Logger:      logger,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error combining signature files: %v", err))
		return 1
	}

	out := os.Stdout
	if cfg.Output != config.DefaultOutput {
		f, err := os.Create(cfg.Output)
		if err != nil {
			ui.Error(fmt.Sprintf("error creating output file: %v", err))
			return 1
		}
		defer f.Close()
		out = f
	}
	if err := sigfile.Write(out, merged, time.Now); err != nil {
		ui.Error(fmt.Sprintf("error writing combined signature file: %v", err))
		return 1
	}

	logger.Info("combined signature files",
		"documents", len(docs),
		"signatures", len(merged.Signatures),
		"formats", len(merged.Formats),
	)
	return 0
}
