package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the result of one reducer. The variants are DayRange,
// MonthlyAverage and YearlyExtreme.
type Summary interface {
	Mode() Mode
	summary()
}

// DayTemperature is one kept row of a day-range report. Index is 1-based over
// the kept rows, not the calendar day.
type DayTemperature struct {
	Index int
	Max   float64
	Min   float64
}

type DayRange struct {
	Entries []DayTemperature
}

// MonthlyAverage holds averages divided by the total row count of the month.
type MonthlyAverage struct {
	MaxTemp      decimal.Decimal
	MinTemp      decimal.Decimal
	MeanHumidity decimal.Decimal
}

// Extreme is a running extreme and the date it was first reached.
type Extreme struct {
	Value float64
	Date  time.Time
	Found bool
}

// Day formats the extreme's date as YYYY-MM-DD, or "" when it has none.
func (e Extreme) Day() string {
	if e.Date.IsZero() {
		return ""
	}
	return e.Date.Format(time.DateOnly)
}

type YearlyExtreme struct {
	MaxTemp     Extreme
	MinTemp     Extreme
	MaxHumidity Extreme
}

func (DayRange) Mode() Mode       { return ModeDayRange }
func (MonthlyAverage) Mode() Mode { return ModeMonthlyAverage }
func (YearlyExtreme) Mode() Mode  { return ModeYearlyExtreme }

func (DayRange) summary()       {}
func (MonthlyAverage) summary() {}
func (YearlyExtreme) summary()  {}
