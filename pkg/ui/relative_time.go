package ui

import (
	"fmt"
	"strings"
	"time"
)

// Never is shown for absent or unparsable dates.
const Never = "Never"

var timeLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTime parses the timestamp formats the backend emits. Values without a
// zone are read as UTC.
func ParseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// RelativeTime formats value relative to now, e.g. "5 minutes ago". Dates
// more than 30 days back are printed as "Jan 2, 2006".
func RelativeTime(value string, now time.Time) string {
	t, ok := ParseTime(value)
	if !ok {
		return Never
	}

	return RelativeTimeOf(t, now)
}

// RelativeTimeOf is RelativeTime for an already parsed time. The zero time is Never.
func RelativeTimeOf(t, now time.Time) string {
	if t.IsZero() {
		return Never
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}

	return fmt.Sprintf("%d %ss ago", n, unit)
}
