// Package metrics derives streaks, heatmaps, badges and progress statistics
// from already-fetched habit and completion records.
//
// Every function in this package is a pure function of its inputs and the
// Calendar it is given. Nothing here performs I/O, logs, or keeps state
// between calls.
package metrics

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitus/internal/constants"
)

// Day is a calendar date in YYYY-MM-DD form. Ordering and equality are
// lexicographic, which holds because the layout is fixed-width and zero-padded.
type Day string

// ParseDay validates s and returns it as a Day.
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid day %q: %w", s, err)
	}
	return Day(s), nil
}

// Valid reports whether d is a well-formed day identifier.
func (d Day) Valid() bool {
	_, err := ParseDay(string(d))
	return err == nil
}

// String implements fmt.Stringer.
func (d Day) String() string { return string(d) }

// midnight returns the UTC midnight instant of d. Using UTC keeps every day
// exactly 24h long regardless of the viewer's daylight-saving rules.
func (d Day) midnight() time.Time {
	t, err := time.Parse(constants.DateFormat, string(d))
	if err != nil {
		panic(fmt.Sprintf("metrics: malformed day %q", string(d)))
	}
	return t
}

// Calendar resolves "today" for a viewer. The zero value is not usable; use NewCalendar.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar returns a Calendar using the wall clock in loc.
// A nil loc means time.Local.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc, now: time.Now}
}

// At returns a copy of c frozen at the given instant.
func (c Calendar) At(now time.Time) Calendar {
	c.now = func() time.Time { return now }
	return c
}

// Location returns the viewer's timezone.
func (c Calendar) Location() *time.Location { return c.loc }

// Now returns the current instant in the viewer's timezone.
func (c Calendar) Now() time.Time { return c.now().In(c.loc) }

// Normalize converts an instant to the viewer's calendar day.
func (c Calendar) Normalize(t time.Time) Day {
	return Day(t.In(c.loc).Format(constants.DateFormat))
}

// Today returns the viewer's current calendar day.
func (c Calendar) Today() Day {
	return c.Normalize(c.now())
}

// DaysAgo returns the day n calendar days before today. The offset is applied
// to the day-of-month field so month and year rollover resolve naturally.
// n must be non-negative.
func (c Calendar) DaysAgo(n int) Day {
	if n < 0 {
		panic(fmt.Sprintf("metrics: DaysAgo called with negative offset %d", n))
	}
	now := c.Now()
	// Noon avoids landing on a skipped or repeated hour at DST boundaries.
	t := time.Date(now.Year(), now.Month(), now.Day()-n, 12, 0, 0, 0, c.loc)
	return c.Normalize(t)
}

// DayDifference returns the number of calendar days from a to b (b - a).
// The result is negative when b precedes a. Both days must be well-formed.
func DayDifference(a, b Day) int {
	ms := b.midnight().Sub(a.midnight()).Milliseconds()
	return int(ms / constants.MillisPerDay)
}

// AreAdjacent reports whether b is exactly the calendar day after a.
func AreAdjacent(a, b Day) bool {
	return DayDifference(a, b) == 1
}

// AddDays returns the day n days after d (n may be negative).
func AddDays(d Day, n int) Day {
	t := d.midnight()
	return Day(time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat))
}
