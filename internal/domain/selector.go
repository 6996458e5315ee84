package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode selects which statistic a report computes.
type Mode int

const (
	ModeDayRange Mode = iota + 1
	ModeMonthlyAverage
	ModeYearlyExtreme
)

// Modes lists every mode in the order reports are produced.
var Modes = []Mode{ModeDayRange, ModeMonthlyAverage, ModeYearlyExtreme}

// Flag returns the single-letter command-line flag for the mode.
func (m Mode) Flag() string {
	switch m {
	case ModeDayRange:
		return "c"
	case ModeMonthlyAverage:
		return "a"
	case ModeYearlyExtreme:
		return "e"
	default:
		return ""
	}
}

func (m Mode) String() string {
	switch m {
	case ModeDayRange:
		return "day-range"
	case ModeMonthlyAverage:
		return "monthly-average"
	case ModeYearlyExtreme:
		return "yearly-extreme"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m Mode) Valid() bool {
	return m >= ModeDayRange && m <= ModeYearlyExtreme
}

// Selector picks the files a report reads. Month is zero for yearly selectors.
// Date keeps the string the selector was parsed from.
type Selector struct {
	Mode  Mode
	Year  int
	Month time.Month
	Date  string
}

// ParseSelector parses "YYYY/MM" for the monthly modes and "YYYY" for the
// yearly mode.
func ParseSelector(mode Mode, date string) (Selector, error) {
	date = strings.TrimSpace(date)
	switch mode {
	case ModeDayRange, ModeMonthlyAverage:
		y, m, ok := strings.Cut(date, "/")
		if !ok {
			return Selector{}, fmt.Errorf("%w: %q: want YYYY/MM", ErrInvalidSelector, date)
		}
		year, err := parseYear(y)
		if err != nil {
			return Selector{}, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, date, err)
		}
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return Selector{}, fmt.Errorf("%w: %q: month must be 1-12", ErrInvalidSelector, date)
		}
		return Selector{Mode: mode, Year: year, Month: time.Month(month), Date: date}, nil
	case ModeYearlyExtreme:
		year, err := parseYear(date)
		if err != nil {
			return Selector{}, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, date, err)
		}
		return Selector{Mode: mode, Year: year, Date: date}, nil
	default:
		return Selector{}, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
}

func parseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("year must have four digits")
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1 {
		return 0, fmt.Errorf("year must be numeric")
	}
	return y, nil
}

// String returns the date as written on the command line, or a canonical form
// for selectors built directly.
func (s Selector) String() string {
	if s.Date != "" {
		return s.Date
	}
	if s.Mode == ModeYearlyExtreme {
		return fmt.Sprintf("%04d", s.Year)
	}
	return fmt.Sprintf("%04d/%d", s.Year, int(s.Month))
}
