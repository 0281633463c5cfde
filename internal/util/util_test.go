package util

import (
	"testing"
	"time"
)

func TestFormatBudget(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{300, "$300"},
		{1500, "$1,500"},
		{2500000, "$2,500,000"},
		{99.5, "$99.50"},
	}

	for _, tt := range tests {
		if got := FormatBudget(tt.amount); got != tt.want {
			t.Errorf("FormatBudget(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "Jan 15, 2024" {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer sentence", 9, "a longer…"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
