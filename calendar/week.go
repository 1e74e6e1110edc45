// Package calendar does the week arithmetic behind the weekly journal
// view. Weeks start at midnight on a configurable weekday in the location
// of the time they were built from.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type Week struct {
	Start time.Time
}

// WeekOf returns the week containing t, starting on first.
func WeekOf(t time.Time, first time.Weekday) Week {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	back := (int(day.Weekday()) - int(first) + 7) % 7
	return Week{Start: day.AddDate(0, 0, -back)}
}

// End is the first instant after the week.
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, 7)
}

func (w Week) Next() Week { return w.Shift(1) }
func (w Week) Prev() Week { return w.Shift(-1) }

// Shift moves n weeks forward, or back for negative n. AddDate keeps
// midnight across DST changes.
func (w Week) Shift(n int) Week {
	return Week{Start: w.Start.AddDate(0, 0, 7*n)}
}

func (w Week) Contains(t time.Time) bool {
	t = t.In(w.Start.Location())
	return !t.Before(w.Start) && t.Before(w.End())
}

// Days returns midnight of each day in the week.
func (w Week) Days() [7]time.Time {
	var out [7]time.Time
	for i := range out {
		out[i] = w.Start.AddDate(0, 0, i)
	}
	return out
}

// DayIndex is the 0-based position of t within the week.
func (w Week) DayIndex(t time.Time) (int, bool) {
	if !w.Contains(t) {
		return 0, false
	}
	t = t.In(w.Start.Location())
	for i, d := range w.Days() {
		if !t.Before(d) && t.Before(d.AddDate(0, 0, 1)) {
			return i, true
		}
	}
	return 0, false
}

func (w Week) Label() string {
	last := w.End().AddDate(0, 0, -1)
	return fmt.Sprintf("%s to %s", w.Start.Format(dateLayout), last.Format(dateLayout))
}

// DayBounds returns [start, end) for a YYYY-MM-DD day in loc.
func DayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}

// ParseWeekday accepts full or three letter English day names.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
