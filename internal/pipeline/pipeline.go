package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/couchcryptid/weatherman/internal/domain"
	"github.com/couchcryptid/weatherman/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Locator maps a selector to the files it reads.
type Locator interface {
	Locate(ctx context.Context, sel domain.Selector) ([]domain.Source, error)
}

// Parser reads located files into records.
type Parser interface {
	ReadFiles(ctx context.Context, sources []domain.Source) ([]domain.Record, error)
}

// Aggregator reduces records to the summary for a mode.
type Aggregator interface {
	Aggregate(ctx context.Context, mode domain.Mode, records []domain.Record) (domain.Summary, error)
}

// Renderer writes a summary as text.
type Renderer interface {
	Render(w io.Writer, s domain.Summary) error
}

// Result is the outcome of one selector.
type Result struct {
	Selector domain.Selector
	Err      error
	Duration time.Duration
}

// Driver runs the locate-parse-aggregate-render chain once per selector.
type Driver struct {
	locator    Locator
	parser     Parser
	aggregator Aggregator
	renderer   Renderer
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
}

// New creates a Driver with the given stages and observability. A nil clock
// uses real time.
func New(l Locator, p Parser, a Aggregator, r Renderer, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Driver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Driver{
		locator:    l,
		parser:     p,
		aggregator: a,
		renderer:   r,
		logger:     logger,
		metrics:    metrics,
		clock:      clock,
	}
}

// Run processes each selector independently, in c, a, e order. Reports are
// written to out; user-facing failure messages go to errOut. A failing
// selector never stops the others.
func (d *Driver) Run(ctx context.Context, selectors []domain.Selector, out, errOut io.Writer) []Result {
	ordered := make([]domain.Selector, len(selectors))
	copy(ordered, selectors)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Mode < ordered[j].Mode })

	results := make([]Result, 0, len(ordered))
	for _, sel := range ordered {
		start := d.clock.Now()
		err := d.runOne(ctx, sel, out)
		elapsed := d.clock.Since(start)

		mode := sel.Mode.String()
		d.metrics.ReportDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
		if err != nil {
			d.metrics.ReportErrors.WithLabelValues(mode, observability.ErrorKind(err)).Inc()
			d.report(errOut, sel, err)
		} else {
			d.metrics.ReportsRendered.WithLabelValues(mode).Inc()
			d.logger.Info("report rendered", "mode", mode, "selector", sel.String(), "duration", elapsed)
		}
		results = append(results, Result{Selector: sel, Err: err, Duration: elapsed})
	}
	return results
}

// runOne renders into a buffer so a failing report leaves no partial output.
func (d *Driver) runOne(ctx context.Context, sel domain.Selector, out io.Writer) error {
	sources, err := d.locator.Locate(ctx, sel)
	if err != nil {
		return err
	}

	records, err := d.parser.ReadFiles(ctx, sources)
	if err != nil {
		return err
	}
	d.logger.Debug("records loaded", "mode", sel.Mode.String(), "files", len(sources), "rows", len(records))

	summary, err := d.aggregator.Aggregate(ctx, sel.Mode, records)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := d.renderer.Render(&buf, summary); err != nil {
		return err
	}
	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (d *Driver) report(errOut io.Writer, sel domain.Selector, err error) {
	if errors.Is(err, domain.ErrFileNotFound) {
		d.logger.Info("weather file not found", "mode", sel.Mode.String(), "selector", sel.String(), "error", err)
		fmt.Fprintf(errOut, "File for %s does not exist\n", sel)
		return
	}
	d.logger.Error("report failed", "mode", sel.Mode.String(), "selector", sel.String(), "error", err)
	fmt.Fprintf(errOut, "Error for -%s %s: %v\n", sel.Mode.Flag(), sel, err)
}

// Failed reports whether any selector failed.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
