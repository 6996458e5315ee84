package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/couchcryptid/weatherman/internal/adapter/weatherfile"
	"github.com/couchcryptid/weatherman/internal/domain"
	"github.com/google/subcommands"
)

type filesCmd struct {
	app *app
	dir string
}

func (*filesCmd) Name() string     { return "files" }
func (*filesCmd) Synopsis() string { return "list the weather files a year or month resolves to" }
func (*filesCmd) Usage() string {
	return `weatherman files [-dir <path>] <YYYY | YYYY/MM>...

  Lists each matching file with its data-row count and the number of
  non-numeric values found in numeric columns.
`
}

func (c *filesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "weather files directory (defaults to WEATHERMAN_DATA_DIR)")
}

func (c *filesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	dir := c.dir
	if dir == "" {
		dir = c.app.cfg.DataDir
	}

	locator := weatherfile.NewLocator(dir, c.app.logger)
	reader := weatherfile.NewReader(c.app.logger, c.app.metrics)

	w := tabwriter.NewWriter(c.app.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tPERIOD\tROWS\tMALFORMED")

	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		sel, err := selectorFor(arg)
		if err != nil {
			fmt.Fprintf(c.app.stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		sources, err := locator.Locate(ctx, sel)
		if err != nil {
			fmt.Fprintf(c.app.stderr, "Error: %s: %v\n", arg, err)
			status = subcommands.ExitFailure
			continue
		}
		for _, src := range sources {
			records, err := reader.ReadFile(ctx, src)
			if err != nil {
				fmt.Fprintf(c.app.stderr, "Error: %v\n", err)
				status = subcommands.ExitFailure
				continue
			}
			malformed := 0
			for _, r := range records {
				malformed += len(r.Malformed())
			}
			fmt.Fprintf(w, "%s\t%04d-%02d\t%d\t%d\n", src.Path, src.Year, int(src.Month), len(records), malformed)
		}
	}

	if err := w.Flush(); err != nil {
		return subcommands.ExitFailure
	}
	return status
}

// selectorFor reads "YYYY/MM" as a month and "YYYY" as a year.
func selectorFor(arg string) (domain.Selector, error) {
	if strings.Contains(arg, "/") {
		return domain.ParseSelector(domain.ModeMonthlyAverage, arg)
	}
	return domain.ParseSelector(domain.ModeYearlyExtreme, arg)
}
