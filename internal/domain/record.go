package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column positions in the station files.
const (
	ColDay          = 0
	ColMaxTemp      = 1
	ColMinTemp      = 3
	ColMaxHumidity  = 7
	ColMeanHumidity = 8
)

// NumericColumns are the positions expected to hold numbers.
var NumericColumns = []int{ColMaxTemp, ColMinTemp, ColMaxHumidity, ColMeanHumidity}

const (
	filePrefix = "Murree_weather_"
	fileExt    = ".txt"
)

// Source identifies one monthly weather file and the period it covers.
type Source struct {
	Path  string
	Year  int
	Month time.Month
}

// FileName returns the conventional file name for a year and month,
// e.g. "Murree_weather_2011_Jan.txt".
func FileName(year int, month time.Month) string {
	return fmt.Sprintf("%s%04d_%s%s", filePrefix, year, month.String()[:3], fileExt)
}

// ParseFileName extracts the year and month from a conventional file name.
func ParseFileName(name string) (year int, month time.Month, ok bool) {
	rest, found := strings.CutPrefix(name, filePrefix)
	if !found {
		return 0, 0, false
	}
	rest, found = strings.CutSuffix(rest, fileExt)
	if !found {
		return 0, 0, false
	}
	y, mon, found := strings.Cut(rest, "_")
	if !found || len(y) != 4 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return 0, 0, false
	}
	month, ok = monthFromAbbrev(mon)
	return year, month, ok
}

func monthFromAbbrev(abbrev string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String()[:3] == abbrev {
			return m, true
		}
	}
	return 0, false
}

// Record is one parsed data line together with the file it came from.
type Record struct {
	Source Source
	Line   int
	Fields []Field
}

// Field returns the field at i, or an Absent field past the end of the line.
func (r Record) Field(i int) Field {
	if i < 0 || i >= len(r.Fields) {
		return Field{}
	}
	return r.Fields[i]
}

func (r Record) MaxTemp() Field      { return r.Field(ColMaxTemp) }
func (r Record) MinTemp() Field      { return r.Field(ColMinTemp) }
func (r Record) MaxHumidity() Field  { return r.Field(ColMaxHumidity) }
func (r Record) MeanHumidity() Field { return r.Field(ColMeanHumidity) }

// Day returns the day of month held in column 0. Both "10" and "2011-2-10"
// yield 10.
func (r Record) Day() (int, bool) {
	f := r.Field(ColDay)
	if v, ok := f.Number(); ok && f.Kind() == Int {
		return int(v), true
	}
	if f.Kind() != Text {
		return 0, false
	}
	parts := strings.Split(f.Text(), "-")
	if len(parts) != 3 {
		return 0, false
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}
	return d, true
}

// Date combines the source file's year and month with the row's day.
func (r Record) Date() (time.Time, bool) {
	day, ok := r.Day()
	if !ok || day < 1 || day > 31 || r.Source.Year == 0 {
		return time.Time{}, false
	}
	d := time.Date(r.Source.Year, r.Source.Month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != r.Source.Month {
		// Day 31 in a 30-day month rolls over; reject it.
		return time.Time{}, false
	}
	return d, true
}

// Malformed returns the numeric columns of r that hold text instead of a number.
func (r Record) Malformed() []int {
	var cols []int
	for _, c := range NumericColumns {
		if r.Field(c).Kind() == Text {
			cols = append(cols, c)
		}
	}
	return cols
}
