package version

import (
	"github.com/ffdev-info/combiner/internal/cmd/base"
	"github.com/ffdev-info/combiner/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the combiner version"
}

func (c *Command) Help() string {
	return `Usage: combiner version

  This command prints the combiner version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
