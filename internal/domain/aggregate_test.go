package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jan2011 = Source{Path: "Murree_weather_2011_Jan.txt", Year: 2011, Month: time.January}
	feb2011 = Source{Path: "Murree_weather_2011_Feb.txt", Year: 2011, Month: time.February}
)

// row parses a comma-separated data line the same way the file reader does.
func row(src Source, line string) Record {
	tokens := strings.Split(line, ",")
	fields := make([]Field, len(tokens))
	for i, tok := range tokens {
		fields[i] = ParseField(tok)
	}
	return Record{Source: src, Fields: fields}
}

func TestDailyTemperatures(t *testing.T) {
	t.Run("keeps complete rows in order", func(t *testing.T) {
		records := []Record{
			row(jan2011, "1,20,,5,,,,60,50"),
			row(jan2011, "2,22,,,,,,65,55"),
			row(jan2011, "3,18,,2,,,,70,60"),
			row(jan2011, "4,,,4,,,,70,60"),
			row(jan2011, "5,25,,9,,,,70,60"),
		}

		got := DailyTemperatures(records, PresenceTruthy)

		want := []DayTemperature{
			{Index: 1, Max: 20, Min: 5},
			{Index: 2, Max: 18, Min: 2},
			{Index: 3, Max: 25, Min: 9},
		}
		if diff := cmp.Diff(want, got.Entries); diff != "" {
			t.Fatalf("entries mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got := DailyTemperatures(nil, PresenceTruthy)
		assert.Empty(t, got.Entries)
	})

	t.Run("zero min is a gap unless presence is numeric", func(t *testing.T) {
		records := []Record{row(jan2011, "1,8,,0,,,,60,50")}
		assert.Empty(t, DailyTemperatures(records, PresenceTruthy).Entries)
		assert.Len(t, DailyTemperatures(records, PresenceNumeric).Entries, 1)
	})

	t.Run("output length equals complete row count", func(t *testing.T) {
		var records []Record
		complete := 0
		for i := 1; i <= 31; i++ {
			if i%3 == 0 {
				records = append(records, row(jan2011, "1,10,,,,,,1,1"))
				continue
			}
			records = append(records, row(jan2011, "1,10,,4,,,,1,1"))
			complete++
		}
		got := DailyTemperatures(records, PresenceTruthy)
		require.Len(t, got.Entries, complete)
		for i, e := range got.Entries {
			assert.Equal(t, i+1, e.Index)
		}
	})
}

func TestMonthlyAverages(t *testing.T) {
	t.Run("two row month", func(t *testing.T) {
		records := []Record{
			row(jan2011, "1,20,,5,,,,60,50"),
			row(jan2011, "2,22,,8,,,,65,55"),
		}

		got, err := MonthlyAverages(records, PresenceTruthy)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("21").Equal(got.MaxTemp), got.MaxTemp.String())
		assert.True(t, decimal.RequireFromString("6.5").Equal(got.MinTemp), got.MinTemp.String())
		assert.True(t, decimal.RequireFromString("52.5").Equal(got.MeanHumidity), got.MeanHumidity.String())
	})

	t.Run("sparse fields divide by total row count", func(t *testing.T) {
		records := []Record{
			row(jan2011, "1,30,,5,,,,60,50"),
			row(jan2011, "2,,,8,,,,65,55"),
			row(jan2011, "3,,,8,,,,65,"),
			row(jan2011, "4,,,8,,,,65,55"),
		}

		got, err := MonthlyAverages(records, PresenceTruthy)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("7.5").Equal(got.MaxTemp), got.MaxTemp.String())
		assert.True(t, decimal.RequireFromString("7.25").Equal(got.MinTemp), got.MinTemp.String())
		assert.True(t, decimal.RequireFromString("40").Equal(got.MeanHumidity), got.MeanHumidity.String())
	})

	t.Run("text in numeric column is skipped", func(t *testing.T) {
		records := []Record{
			row(jan2011, "1,abc,,5,,,,60,50"),
			row(jan2011, "2,10,,5,,,,60,50"),
		}
		got, err := MonthlyAverages(records, PresenceTruthy)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(5).Equal(got.MaxTemp), got.MaxTemp.String())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := MonthlyAverages(nil, PresenceTruthy)
		require.ErrorIs(t, err, ErrEmptyDataSet)
	})
}

func TestYearlyExtremes(t *testing.T) {
	t.Run("spans files", func(t *testing.T) {
		records := []Record{
			row(jan2011, "1,20,,5,,,,60,50"),
			row(jan2011, "2,22,,-3,,,,91,55"),
			row(feb2011, "1,12,,1,,,,80,50"),
			row(feb2011, "10,25,,4,,,,70,50"),
		}

		got, err := YearlyExtremes(records, PresenceTruthy)
		require.NoError(t, err)

		assert.Equal(t, 25.0, got.MaxTemp.Value)
		assert.Equal(t, "2011-02-10", got.MaxTemp.Day())
		assert.Equal(t, -3.0, got.MinTemp.Value)
		assert.Equal(t, "2011-01-02", got.MinTemp.Day())
		assert.Equal(t, 91.0, got.MaxHumidity.Value)
		assert.Equal(t, "2011-01-02", got.MaxHumidity.Day())
	})

	t.Run("ties keep the earliest row", func(t *testing.T) {
		records := []Record{
			row(jan2011, "4,30,,5,,,,60,50"),
			row(feb2011, "9,30,,5,,,,60,50"),
		}

		got, err := YearlyExtremes(records, PresenceTruthy)
		require.NoError(t, err)
		assert.Equal(t, "2011-01-04", got.MaxTemp.Day())
		assert.Equal(t, "2011-01-04", got.MinTemp.Day())
		assert.Equal(t, "2011-01-04", got.MaxHumidity.Day())
	})

	t.Run("zero is skipped under truthy presence", func(t *testing.T) {
		records := []Record{
			row(jan2011, "1,10,,0,,,,60,50"),
			row(jan2011, "2,12,,3,,,,60,50"),
		}

		truthy, err := YearlyExtremes(records, PresenceTruthy)
		require.NoError(t, err)
		assert.Equal(t, 3.0, truthy.MinTemp.Value)

		numeric, err := YearlyExtremes(records, PresenceNumeric)
		require.NoError(t, err)
		assert.Equal(t, 0.0, numeric.MinTemp.Value)
		assert.Equal(t, "2011-01-01", numeric.MinTemp.Day())
	})

	t.Run("missing readings keep the seeds", func(t *testing.T) {
		records := []Record{row(jan2011, "1,,,,,,,,")}

		got, err := YearlyExtremes(records, PresenceTruthy)
		require.NoError(t, err)
		assert.False(t, got.MaxTemp.Found)
		assert.Equal(t, -1000.0, got.MaxTemp.Value)
		assert.Equal(t, 1000.0, got.MinTemp.Value)
		assert.Empty(t, got.MaxHumidity.Day())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := YearlyExtremes(nil, PresenceTruthy)
		require.ErrorIs(t, err, ErrEmptyDataSet)
	})
}

func TestAggregate_Dispatch(t *testing.T) {
	records := []Record{row(jan2011, "1,20,,5,,,,60,50")}

	for _, mode := range Modes {
		t.Run(mode.String(), func(t *testing.T) {
			got, err := Aggregate(mode, records, nil)
			require.NoError(t, err)
			assert.Equal(t, mode, got.Mode())
		})
	}

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Aggregate(Mode(0), records, nil)
		require.ErrorIs(t, err, ErrInvalidMode)
	})
}
