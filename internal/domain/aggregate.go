package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Seeds for the yearly extreme search. They sit outside any plausible Celsius
// temperature or humidity percentage.
const (
	seedHigh = -1000
	seedLow  = 1000
)

// Aggregate runs the reducer for mode over records.
func Aggregate(mode Mode, records []Record, presence Presence) (Summary, error) {
	if presence == nil {
		presence = PresenceTruthy
	}
	switch mode {
	case ModeDayRange:
		return DailyTemperatures(records, presence), nil
	case ModeMonthlyAverage:
		return MonthlyAverages(records, presence)
	case ModeYearlyExtreme:
		return YearlyExtremes(records, presence)
	default:
		return nil, fmt.Errorf("aggregate: %w: %v", ErrInvalidMode, mode)
	}
}

// DailyTemperatures keeps, in row order, every record with both a max and a
// min temperature. Rows missing either are dropped silently.
func DailyTemperatures(records []Record, presence Presence) DayRange {
	entries := make([]DayTemperature, 0, len(records))
	for _, r := range records {
		hi, okHi := presence(r.MaxTemp())
		lo, okLo := presence(r.MinTemp())
		if !okHi || !okLo {
			continue
		}
		entries = append(entries, DayTemperature{Index: len(entries) + 1, Max: hi, Min: lo})
	}
	return DayRange{Entries: entries}
}

// MonthlyAverages sums present max temperature, min temperature and mean
// humidity readings and divides each sum by the total number of records, not
// by the number of records where that reading was present.
func MonthlyAverages(records []Record, presence Presence) (MonthlyAverage, error) {
	if len(records) == 0 {
		return MonthlyAverage{}, fmt.Errorf("monthly averages: %w", ErrEmptyDataSet)
	}

	var sumMax, sumMin, sumHumidity decimal.Decimal
	for _, r := range records {
		if v, ok := presence(r.MaxTemp()); ok {
			sumMax = sumMax.Add(decimal.NewFromFloat(v))
		}
		if v, ok := presence(r.MinTemp()); ok {
			sumMin = sumMin.Add(decimal.NewFromFloat(v))
		}
		if v, ok := presence(r.MeanHumidity()); ok {
			sumHumidity = sumHumidity.Add(decimal.NewFromFloat(v))
		}
	}

	n := decimal.NewFromInt(int64(len(records)))
	return MonthlyAverage{
		MaxTemp:      sumMax.Div(n),
		MinTemp:      sumMin.Div(n),
		MeanHumidity: sumHumidity.Div(n),
	}, nil
}

// YearlyExtremes finds the highest max temperature, lowest min temperature and
// highest max humidity. Comparisons are strict, so the first record to reach
// an extreme keeps it.
func YearlyExtremes(records []Record, presence Presence) (YearlyExtreme, error) {
	if len(records) == 0 {
		return YearlyExtreme{}, fmt.Errorf("yearly extremes: %w", ErrEmptyDataSet)
	}

	out := YearlyExtreme{
		MaxTemp:     Extreme{Value: seedHigh},
		MinTemp:     Extreme{Value: seedLow},
		MaxHumidity: Extreme{Value: seedHigh},
	}
	for _, r := range records {
		date, _ := r.Date()
		if v, ok := presence(r.MaxTemp()); ok && v > out.MaxTemp.Value {
			out.MaxTemp = Extreme{Value: v, Date: date, Found: true}
		}
		if v, ok := presence(r.MinTemp()); ok && v < out.MinTemp.Value {
			out.MinTemp = Extreme{Value: v, Date: date, Found: true}
		}
		if v, ok := presence(r.MaxHumidity()); ok && v > out.MaxHumidity.Value {
			out.MaxHumidity = Extreme{Value: v, Date: date, Found: true}
		}
	}
	return out, nil
}
