package weatherfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/weatherman/internal/domain"
)

// Locator maps selectors to the weather files stored in one directory.
// It implements pipeline.Locator.
type Locator struct {
	dir    string
	logger *slog.Logger
}

// NewLocator creates a Locator rooted at dir.
func NewLocator(dir string, logger *slog.Logger) *Locator {
	return &Locator{dir: dir, logger: logger}
}

// Locate returns the files a selector reads: one file for the monthly modes,
// every file of the year for the yearly mode.
func (l *Locator) Locate(_ context.Context, sel domain.Selector) ([]domain.Source, error) {
	switch sel.Mode {
	case domain.ModeDayRange, domain.ModeMonthlyAverage:
		src, err := l.LocateMonth(sel.Year, sel.Month)
		if err != nil {
			return nil, err
		}
		return []domain.Source{src}, nil
	case domain.ModeYearlyExtreme:
		return l.LocateYear(sel.Year)
	default:
		return nil, fmt.Errorf("locate: %w: %v", domain.ErrInvalidMode, sel.Mode)
	}
}

// LocateMonth returns the file for one month if it exists as a regular file.
func (l *Locator) LocateMonth(year int, month time.Month) (domain.Source, error) {
	path := filepath.Join(l.dir, domain.FileName(year, month))
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Source{}, fmt.Errorf("locate %s: %w", path, domain.ErrFileNotFound)
		}
		return domain.Source{}, fmt.Errorf("locate %s: %w: %w", path, domain.ErrUnreadableFile, err)
	}
	if !info.Mode().IsRegular() {
		return domain.Source{}, fmt.Errorf("locate %s: not a regular file: %w", path, domain.ErrFileNotFound)
	}
	return domain.Source{Path: path, Year: year, Month: month}, nil
}

// LocateYear returns every monthly file of a year in calendar order.
func (l *Locator) LocateYear(year int) ([]domain.Source, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("locate year %04d in %s: %w", year, l.dir, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("locate year %04d in %s: %w: %w", year, l.dir, domain.ErrUnreadableFile, err)
	}

	var sources []domain.Source
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		y, m, ok := domain.ParseFileName(e.Name())
		if !ok || y != year {
			continue
		}
		sources = append(sources, domain.Source{Path: filepath.Join(l.dir, e.Name()), Year: y, Month: m})
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("locate year %04d in %s: %w", year, l.dir, domain.ErrFileNotFound)
	}

	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Month != sources[j].Month {
			return sources[i].Month < sources[j].Month
		}
		return sources[i].Path < sources[j].Path
	})

	l.logger.Debug("located year files", "year", year, "files", len(sources))
	return sources, nil
}
