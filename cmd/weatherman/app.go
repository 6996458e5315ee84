package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/weatherman/internal/adapter/weatherfile"
	"github.com/couchcryptid/weatherman/internal/config"
	"github.com/couchcryptid/weatherman/internal/domain"
	"github.com/couchcryptid/weatherman/internal/observability"
	"github.com/couchcryptid/weatherman/internal/pipeline"
	"github.com/couchcryptid/weatherman/internal/report"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// app carries the per-process dependencies every subcommand needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	stdout  io.Writer
	stderr  io.Writer
}

// selectorFlags holds the three optional report selectors.
type selectorFlags struct {
	dayRange string
	average  string
	extreme  string
}

func (s *selectorFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.dayRange, "c", "", "daily temperature bars for a month (YYYY/MM)")
	f.StringVar(&s.average, "a", "", "average temperatures and humidity for a month (YYYY/MM)")
	f.StringVar(&s.extreme, "e", "", "temperature and humidity extremes for a year (YYYY)")
}

func (s selectorFlags) any() bool {
	return s.dayRange != "" || s.average != "" || s.extreme != ""
}

// parse returns the valid selectors and one error per invalid flag value.
func (s selectorFlags) parse() ([]domain.Selector, []error) {
	raw := map[domain.Mode]string{
		domain.ModeDayRange:       s.dayRange,
		domain.ModeMonthlyAverage: s.average,
		domain.ModeYearlyExtreme:  s.extreme,
	}

	var (
		sels []domain.Selector
		errs []error
	)
	for _, mode := range domain.Modes {
		if raw[mode] == "" {
			continue
		}
		sel, err := domain.ParseSelector(mode, raw[mode])
		if err != nil {
			errs = append(errs, fmt.Errorf("-%s: %w", mode.Flag(), err))
			continue
		}
		sels = append(sels, sel)
	}
	return sels, errs
}

func (a *app) driver(dir string) *pipeline.Driver {
	reader := weatherfile.NewCachedReader(weatherfile.NewReader(a.logger, a.metrics), a.cfg.CacheSize, a.metrics)
	return pipeline.New(
		weatherfile.NewLocator(dir, a.logger),
		reader,
		pipeline.NewAggregator(a.cfg.ZeroAsAbsent),
		report.Renderer{Color: colorEnabled(a.cfg.Color, a.stdout)},
		a.logger,
		a.metrics,
		nil,
	)
}

// report runs every requested selector. Invalid selectors fail on their own
// without blocking the valid ones.
func (a *app) report(ctx context.Context, flags selectorFlags, dir string) subcommands.ExitStatus {
	sels, errs := flags.parse()
	for _, err := range errs {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}

	results := a.driver(dir).Run(ctx, sels, a.stdout, a.stderr)
	if len(errs) > 0 || pipeline.Failed(results) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// colorEnabled resolves auto/always/never. Auto honors NO_COLOR and only
// colors terminals.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
