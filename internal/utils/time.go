package utils

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// CalendarForTimezone returns a wall-clock calendar for the named timezone.
func CalendarForTimezone(timezone string) (metrics.Calendar, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return metrics.Calendar{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return metrics.NewCalendar(loc), nil
}

// CalendarFromSettings returns the viewer's calendar using the configured timezone.
func CalendarFromSettings(settings models.Settings) (metrics.Calendar, error) {
	return CalendarForTimezone(settings.Timezone)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) as midnight in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ResolveDay turns a user-supplied day into a Day. Empty means today;
// "today" and "yesterday" are accepted as shortcuts.
func ResolveDay(cal metrics.Calendar, input string) (metrics.Day, error) {
	switch input {
	case "", "today":
		return cal.Today(), nil
	case "yesterday":
		return cal.DaysAgo(1), nil
	}
	return metrics.ParseDay(input)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
