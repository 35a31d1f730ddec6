package discord

import (
	"testing"
	"time"
)

func TestFormatDateRange(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, time.April, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{"range", day(10), day(12), "10/04/2026 - 12/04/2026"},
		{"same day", day(10), day(10), "10/04/2026"},
		{"no end", day(10), time.Time{}, "10/04/2026"},
		{"empty", time.Time{}, time.Time{}, ""},
	}
	for _, tt := range tests {
		if got := FormatDateRange(tt.start, tt.end); got != tt.want {
			t.Fatalf("%s: FormatDateRange = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatDateTimeUsesMadrid(t *testing.T) {
	// 22:30 UTC in summer is 00:30 the next day in Madrid.
	got := FormatDateTime(time.Date(2026, time.July, 1, 22, 30, 0, 0, time.UTC))
	if got != "02/07/2026 00:30" {
		t.Fatalf("FormatDateTime = %q, want %q", got, "02/07/2026 00:30")
	}
}
