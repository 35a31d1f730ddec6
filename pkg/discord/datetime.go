package discord

import (
	"time"

	"retreat/pkg/tz"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// FormatDate renders t as DD/MM/YYYY in Madrid time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Madrid).Format(dateLayout)
}

// FormatDateRange renders "DD/MM/YYYY - DD/MM/YYYY", or a single date when
// both ends fall on the same day.
func FormatDateRange(start, end time.Time) string {
	from, to := FormatDate(start), FormatDate(end)
	if to == "" || from == to {
		return from
	}
	if from == "" {
		return to
	}
	return from + " - " + to
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Madrid).Format(dateTimeLayout)
}
