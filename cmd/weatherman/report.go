package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type reportCmd struct {
	app   *app
	flags selectorFlags
	dir   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print day-range, monthly-average and yearly-extreme reports" }
func (*reportCmd) Usage() string {
	return `weatherman report [-dir <path>] [-c YYYY/MM] [-a YYYY/MM] [-e YYYY]

  Prints one report per selector, in c, a, e order. A selector that fails
  does not stop the others.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.flags.register(f)
	f.StringVar(&c.dir, "dir", "", "weather files directory (defaults to WEATHERMAN_DATA_DIR)")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.flags.any() {
		fmt.Fprintln(c.app.stderr, "Error: at least one of -c, -a or -e is required")
		f.Usage()
		return subcommands.ExitUsageError
	}
	dir := c.dir
	if dir == "" {
		dir = c.app.cfg.DataDir
	}
	return c.app.report(ctx, c.flags, dir)
}
