package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		kind     FieldKind
		expected float64
		text     string
	}{
		{"integer", "20", Int, 20, "20"},
		{"negative integer", "-3", Int, -3, "-3"},
		{"float", "20.5", Float, 20.5, "20.5"},
		{"trailing newline", "55\n", Int, 55, "55"},
		{"padded", " 7 ", Int, 7, "7"},
		{"empty", "", Absent, 0, ""},
		{"whitespace only", "  \n", Absent, 0, ""},
		{"date text", "2011-2-10", Text, 0, "2011-2-10"},
		{"event text", "Rain-Thunderstorm", Text, 0, "Rain-Thunderstorm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseField(tt.raw)
			assert.Equal(t, tt.kind, f.Kind())
			assert.Equal(t, tt.text, f.Text())
			v, ok := f.Number()
			assert.Equal(t, tt.kind == Int || tt.kind == Float, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestPresence(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		truthy  bool
		numeric bool
	}{
		{"positive", IntField(12), true, true},
		{"negative", IntField(-4), true, true},
		{"zero", IntField(0), false, true},
		{"zero float", FloatField(0), false, true},
		{"absent", Field{}, false, false},
		{"text", ParseField("n/a"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := PresenceTruthy(tt.field)
			assert.Equal(t, tt.truthy, ok)
			_, ok = PresenceNumeric(tt.field)
			assert.Equal(t, tt.numeric, ok)
		})
	}
}
