package storage

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/habitus/internal/constants"
	apperr "github.com/julianstephens/habitus/internal/errors"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/utils"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHabit checks a habit before it is written.
func ValidateHabit(h models.Habit) error {
	if h.ID == "" {
		return apperr.ValidationFailed("habit id is required")
	}
	name := strings.TrimSpace(h.Name)
	if name == "" {
		return apperr.ValidationFailed("habit name is required")
	}
	if utf8.RuneCountInString(name) > constants.MaxHabitNameLength {
		return apperr.ValidationFailed("habit name must be at most %d characters", constants.MaxHabitNameLength)
	}
	if h.Category != "" {
		c, err := models.ParseCategory(string(h.Category))
		if err != nil || c == models.CategoryAll {
			return apperr.ValidationFailed("invalid category %q", h.Category)
		}
	}
	if h.Color != "" && !hexColor.MatchString(h.Color) {
		return apperr.ValidationFailed("invalid color %q (expected #RGB or #RRGGBB)", h.Color)
	}
	if h.Position < 0 {
		return apperr.ValidationFailed("habit position must not be negative")
	}
	return nil
}

// ValidateCompletion checks a completion log before it is written.
func ValidateCompletion(l models.CompletionLog) error {
	if l.ID == "" {
		return apperr.ValidationFailed("completion id is required")
	}
	if l.HabitID == "" {
		return apperr.ValidationFailed("completion habit id is required")
	}
	if _, err := metrics.ParseDay(l.Day); err != nil {
		return apperr.ValidationFailed("invalid completion day %q", l.Day)
	}
	return nil
}

// ValidateDay checks a day used as a query bound.
func ValidateDay(day string) error {
	if _, err := metrics.ParseDay(day); err != nil {
		return apperr.ValidationFailed("invalid day %q (expected YYYY-MM-DD)", day)
	}
	return nil
}

// NormalizeCategory maps an empty category to the fallback.
func NormalizeCategory(c models.Category) models.Category {
	if c == "" {
		return models.CategoryOther
	}
	return c
}

// ValidateSettings checks settings before they are saved.
func ValidateSettings(s models.Settings) error {
	if !utils.ValidateTimezone(s.Timezone) {
		return apperr.ValidationFailed("invalid timezone %q", s.Timezone)
	}
	windows := map[string]int{
		constants.SettingHeatmapDays: s.HeatmapDays,
		constants.SettingHistoryDays: s.HistoryDays,
		constants.SettingStatsDays:   s.StatsDays,
	}
	for key, days := range windows {
		if days < 1 || days > constants.MaxWindowDays {
			return apperr.ValidationFailed("%s must be between 1 and %d", key, constants.MaxWindowDays)
		}
	}
	if s.DefaultCategory != "" {
		c, err := models.ParseCategory(string(s.DefaultCategory))
		if err != nil || c == models.CategoryAll {
			return apperr.ValidationFailed("invalid default category %q", s.DefaultCategory)
		}
	}
	if s.DefaultColor != "" && !hexColor.MatchString(s.DefaultColor) {
		return apperr.ValidationFailed("invalid default color %q", s.DefaultColor)
	}
	return nil
}
