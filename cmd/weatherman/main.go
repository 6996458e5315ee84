// Command weatherman prints temperature and humidity reports from the Murree
// station's monthly weather files.
//
// Usage:
//
//	weatherman report -e 2011 -a 2011/3 -c 2011/03
//	weatherman files 2011 2012/6
//	weatherman -e 2011            (same as "report -e 2011")
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weatherman/internal/config"
	"github.com/couchcryptid/weatherman/internal/observability"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "weatherman: %v\n", err)
		return int(subcommands.ExitUsageError)
	}

	reg := prometheus.NewRegistry()
	a := &app{
		cfg:     cfg,
		logger:  observability.NewLogger(cfg, stderr).With("run_id", uuid.NewString()),
		metrics: observability.NewMetrics(reg),
		stdout:  stdout,
		stderr:  stderr,
	}

	fs := flag.NewFlagSet("weatherman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var legacy selectorFlags
	legacy.register(fs)

	cdr := subcommands.NewCommander(fs, "weatherman")
	cdr.Output = stdout
	cdr.Error = stderr
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(&reportCmd{app: a}, "reports")
	cdr.Register(&filesCmd{app: a}, "reports")

	if err := fs.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}

	var status subcommands.ExitStatus
	switch {
	case legacy.any() && fs.NArg() > 0:
		fmt.Fprintf(stderr, "weatherman: -c, -a and -e cannot be combined with the %q subcommand; use \"weatherman report\"\n", fs.Arg(0))
		status = subcommands.ExitUsageError
	case legacy.any():
		status = a.report(ctx, legacy, cfg.DataDir)
	default:
		status = cdr.Execute(ctx)
	}

	if cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(cfg.MetricsTextfile, reg); err != nil {
			a.logger.Error("metrics textfile", "path", cfg.MetricsTextfile, "error", err)
		}
	}
	return int(status)
}
