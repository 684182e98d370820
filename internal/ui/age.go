package ui

import (
	"fmt"
	"time"
)

const ageWidth = 8

var timeNow = time.Now

// formatAge renders how long ago t was in at most ageWidth cells:
// "now", "5m ago", "3h ago", "12d ago", then "Jan 2" or "Jan '06".
func formatAge(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := timeNow()
	if t.After(now) {
		return formatDate(t, now)
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", max(int(diff/time.Minute), 1))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 100*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	default:
		return formatDate(t, now)
	}
}

func formatDate(t, now time.Time) string {
	local := t.In(now.Location())
	if local.Year() == now.Year() {
		return local.Format("Jan 2")
	}
	return local.Format("Jan '06")
}

// lastChanged prefers the update time and falls back to creation.
func lastChanged(updated, created time.Time) time.Time {
	if !updated.IsZero() {
		return updated
	}
	return created
}
