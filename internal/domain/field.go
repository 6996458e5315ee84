package domain

import (
	"strconv"
	"strings"
)

// FieldKind identifies how a raw token was coerced.
type FieldKind int

const (
	Absent FieldKind = iota
	Int
	Float
	Text
)

func (k FieldKind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Field is one coerced token from a data line.
type Field struct {
	kind FieldKind
	num  float64
	text string
}

// ParseField coerces a raw token: integer, then float, else trimmed text.
// Empty tokens become Absent.
func ParseField(raw string) Field {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Field{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Field{kind: Int, num: float64(n), text: s}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Field{kind: Float, num: f, text: s}
	}
	return Field{kind: Text, text: s}
}

// IntField and FloatField build numeric fields directly, mostly for tests.
func IntField(n int) Field { return Field{kind: Int, num: float64(n), text: strconv.Itoa(n)} }

func FloatField(f float64) Field {
	return Field{kind: Float, num: f, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

func (f Field) Kind() FieldKind { return f.kind }

// Text returns the trimmed source token.
func (f Field) Text() string { return f.text }

// Number returns the numeric value for Int and Float fields.
func (f Field) Number() (float64, bool) {
	if f.kind == Int || f.kind == Float {
		return f.num, true
	}
	return 0, false
}

// Presence decides whether a field holds a usable reading.
type Presence func(Field) (float64, bool)

// PresenceTruthy treats zero as a gap, matching the historical reports.
func PresenceTruthy(f Field) (float64, bool) {
	v, ok := f.Number()
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// PresenceNumeric accepts any numeric value, zero included.
func PresenceNumeric(f Field) (float64, bool) {
	return f.Number()
}
