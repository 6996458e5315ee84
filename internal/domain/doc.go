// Package domain models daily weather observations recorded at Murree and the
// statistics derived from them.
//
// # Data Source
//
// Observations arrive as one comma-separated text file per month, named
//
//	Murree_weather_<YYYY>_<Mon>.txt  →  e.g. "Murree_weather_2011_Jan.txt"
//
// where <Mon> is the three-letter English month abbreviation. The first line
// of every file is a header and carries no data.
//
// # Column Conventions
//
// Only five columns are read; the rest are carried through untouched:
//
//	0  day of month, either a bare integer ("10") or a date ("2011-2-10")
//	1  max temperature, °C
//	3  min temperature, °C
//	7  max humidity, %
//	8  mean humidity, %
//
// Every token is coerced independently: integer first, then float, else the
// trimmed text is kept. An empty token is [Absent]. Text in a numeric column
// is never an error; it is simply not a number.
//
// # Presence
//
// The station data leaves gaps as empty tokens. Historically a reading of 0
// was indistinguishable from a gap, so zero readings were skipped.
// [PresenceTruthy] keeps that behavior; [PresenceNumeric] counts every numeric
// value, zero included.
//
// # Dates
//
// Rows do not carry their year or month. A [Record] is paired with the
// [Source] file it came from, and [Record.Date] combines the file's year and
// month with the row's day of month. This keeps multi-file year scans correct
// after concatenation.
package domain
