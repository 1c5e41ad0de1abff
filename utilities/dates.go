package utilities

import (
	"fmt"
	"time"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a stored date string as "Jan 2, 2006". Empty or
// unparseable values render as empty.
func FormatDate(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// FromNow phrases a date relative to the current time, e.g. "in 3 days" or
// "2 hours ago".
func FromNow(value string) string {
	return fromNowAt(value, time.Now())
}

func fromNowAt(value string, now time.Time) string {
	t, ok := parseDate(value)
	if !ok {
		return ""
	}

	diff := t.Sub(now)
	future := diff >= 0
	if !future {
		diff = -diff
	}

	var phrase string
	switch {
	case diff < time.Minute:
		phrase = "a few seconds"
	case diff < 2*time.Minute:
		phrase = "a minute"
	case diff < time.Hour:
		phrase = fmt.Sprintf("%d minutes", int(diff.Minutes()))
	case diff < 2*time.Hour:
		phrase = "an hour"
	case diff < 24*time.Hour:
		phrase = fmt.Sprintf("%d hours", int(diff.Hours()))
	case diff < 48*time.Hour:
		phrase = "a day"
	case diff < 30*24*time.Hour:
		phrase = fmt.Sprintf("%d days", int(diff.Hours()/24))
	case diff < 60*24*time.Hour:
		phrase = "a month"
	case diff < 365*24*time.Hour:
		phrase = fmt.Sprintf("%d months", int(diff.Hours()/(24*30)))
	case diff < 2*365*24*time.Hour:
		phrase = "a year"
	default:
		phrase = fmt.Sprintf("%d years", int(diff.Hours()/(24*365)))
	}

	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

// IsOverdue reports whether a date falls before the current day. The
// comparison is at day granularity, so a task due today is not overdue.
func IsOverdue(value string) bool {
	return isOverdueAt(value, time.Now())
}

func isOverdueAt(value string, now time.Time) bool {
	t, ok := parseDate(value)
	if !ok {
		return false
	}

	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	due := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}
