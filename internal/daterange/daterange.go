// Package daterange resolves the effective reporting window for list queries.
package daterange

import (
	"fmt"
	"time"
)

// Layout is the calendar format accepted for user-supplied bounds.
const Layout = "2006-01-02"

// defaultWindowDays is how far back the window reaches when no lower bound is given.
const defaultWindowDays = 30

// Resolve computes the effective start and end bounds from optional
// user-supplied date strings. A missing "to" defaults to today, a missing
// "from" defaults to 30 days before the end. Malformed input is an error.
// Start is not required to precede end; a reversed window simply matches
// nothing.
//
// Bounds compare against a day-granular date column, so defaults are
// truncated to midnight; a bound carrying wall-clock time would exclude rows
// dated exactly at the window edge.
func Resolve(from, to string, now time.Time) (time.Time, time.Time, error) {
	end := midnight(now)
	if to != "" {
		parsed, err := time.Parse(Layout, to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q: %w", to, err)
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -defaultWindowDays)
	if from != "" {
		parsed, err := time.Parse(Layout, from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q: %w", from, err)
		}
		start = parsed
	}

	return start, end, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
