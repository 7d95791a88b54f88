package xlsxreader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"dd/mm/yyyy hh:mm", true},
		{"[$-416]d \"de\" mmmm", true},
		{"h:mm AM/PM", true},
		{"0.00", false},
		{"#,##0.00", false},
		{`"Total" 0`, false},
		{`0 "days"`, false},
		{"[Red]0.00", false},
		{`_-* #,##0.00\ "€"_-;\-* #,##0.00\ "€"_-`, false},
		{"@", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateFormatCode(tt.code))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	a, b := 0.1, 0.2

	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"Whole", 3, "3"},
		{"Zero", 0, "0"},
		{"Negative whole", -42, "-42"},
		{"Large whole", 1e20, "100000000000000000000"},
		{"Fraction", 1.5, "1.5"},
		{"Full precision", a + b, "0.30000000000000004"},
		{"Small", 0.0001, "0.0001"},
		{"Tiny", 1e-05, "1e-05"},
		{"Wide fraction", 1234567.5, "1234567.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.input))
		})
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "2024-03-15", formatTime(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15 08:05:00", formatTime(time.Date(2024, 3, 15, 8, 5, 0, 0, time.UTC)))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "True", formatBool("1", "TRUE"))
	assert.Equal(t, "False", formatBool("0", "FALSE"))
	assert.Equal(t, "#N/A", formatBool("#N/A", "#N/A"))
}
