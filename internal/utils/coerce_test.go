package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"4", 4, true},
		{" 12 ", 12, true},
		{"1 234", 1234, true},
		{"1 234,50", 1234, true},
		{"1.234", 1234, true}, // dot-grouped thousands, not 1.234
		{"1.234,50", 1234, true},
		{"12.345.678", 12345678, true},
		{"1.5", 1, true}, // no grouping shape, dot stays decimal
		{"2,6", 2, true}, // toward zero
		{"(3)", -3, true},
		{"(1.000)", -1000, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{".", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseQuantity(tt.in)
		require.Equal(t, tt.ok, ok, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestCleanIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"8400000000017", "8400000000017"},
		{"8400000000017.0", "8400000000017"},
		{" 8400000000017 ", "8400000000017"},
		{"nan", ""},
		{"NaN", ""},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CleanIdentifier(tt.in), "input %q", tt.in)
	}
}
