// Package report renders statistic summaries as plain-text reports.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/weatherman/internal/domain"
)

// ANSI escapes used for the day-range bars.
const (
	ansiBlue  = "\033[34m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Renderer writes one report per summary.
type Renderer struct {
	// Color wraps day-range bars in ANSI color escapes.
	Color bool
}

// Render writes the report for s. On error nothing is written.
func (r Renderer) Render(w io.Writer, s domain.Summary) error {
	var (
		body string
		err  error
	)
	switch s := s.(type) {
	case domain.DayRange:
		body, err = r.dayRange(s)
	case domain.MonthlyAverage:
		body = monthlyAverage(s)
	case domain.YearlyExtreme:
		body = yearlyExtreme(s)
	default:
		err = fmt.Errorf("render: %w: %T", domain.ErrInvalidMode, s)
	}
	if err != nil {
		return err
	}

	out := "Report for " + s.Mode().Flag() + "\n" + body
	if s.Mode() != domain.ModeYearlyExtreme {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

func (r Renderer) dayRange(s domain.DayRange) (string, error) {
	var b strings.Builder
	for _, e := range s.Entries {
		lo, err := barLength(e.Min)
		if err != nil {
			return "", fmt.Errorf("render day %d min: %w", e.Index, err)
		}
		hi, err := barLength(e.Max)
		if err != nil {
			return "", fmt.Errorf("render day %d max: %w", e.Index, err)
		}
		if hi < lo {
			return "", fmt.Errorf("render day %d: max %d below min %d: %w", e.Index, hi, lo, domain.ErrOutOfRange)
		}

		fmt.Fprintf(&b, "%d %s%s %dC - %dC\n",
			e.Index,
			r.paint(ansiBlue, strings.Repeat("+", lo)),
			r.paint(ansiRed, strings.Repeat("+", hi-lo)),
			lo, hi,
		)
	}
	return b.String(), nil
}

// barLength accepts only non-negative whole numbers.
func barLength(v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%v is not a non-negative whole number: %w", v, domain.ErrOutOfRange)
	}
	return int(v), nil
}

func (r Renderer) paint(color, s string) string {
	if !r.Color {
		return s
	}
	return color + s + ansiReset
}

// monthlyAverage formats through float64 so ties round half to even, as %.1f
// does for the nearest binary value (21.25 prints 21.2, 0.15 prints 0.1).
func monthlyAverage(s domain.MonthlyAverage) string {
	return fmt.Sprintf("Highest Average: %.1fC\nLowest Average: %.1fC\nAverage Mean Humidity: %.2f%%\n",
		s.MaxTemp.InexactFloat64(),
		s.MinTemp.InexactFloat64(),
		s.MeanHumidity.InexactFloat64(),
	)
}

func yearlyExtreme(s domain.YearlyExtreme) string {
	return fmt.Sprintf("Highest: %s\nLowest: %s\nHumidity: %s\n",
		extreme(s.MaxTemp, "C"),
		extreme(s.MinTemp, "C"),
		extreme(s.MaxHumidity, "%"),
	)
}

func extreme(e domain.Extreme, unit string) string {
	if !e.Found {
		return "no data"
	}
	out := formatValue(e.Value) + unit
	if day := MonthDay(e.Day()); day != "" {
		out += " on " + day
	}
	return out
}

// MonthDay turns "2011-02-10" into "February 10". It returns "" for anything
// it cannot parse.
func MonthDay(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return ""
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s %d", time.Month(month), day)
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
