package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/habitus/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Unknown keys are ignored.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingUserID:
			settings.UserID = value
		case constants.SettingDefaultCategory:
			settings.DefaultCategory = Category(value)
		case constants.SettingDefaultEmoji:
			settings.DefaultEmoji = value
		case constants.SettingDefaultColor:
			settings.DefaultColor = value
		case constants.SettingHeatmapDays, constants.SettingHistoryDays, constants.SettingStatsDays:
			n, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			switch key {
			case constants.SettingHeatmapDays:
				settings.HeatmapDays = n
			case constants.SettingHistoryDays:
				settings.HistoryDays = n
			default:
				settings.StatsDays = n
			}
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:        settings.Timezone,
		constants.SettingUserID:          settings.UserID,
		constants.SettingDefaultCategory: string(settings.DefaultCategory),
		constants.SettingDefaultEmoji:    settings.DefaultEmoji,
		constants.SettingDefaultColor:    settings.DefaultColor,
		constants.SettingHeatmapDays:     strconv.Itoa(settings.HeatmapDays),
		constants.SettingHistoryDays:     strconv.Itoa(settings.HistoryDays),
		constants.SettingStatsDays:       strconv.Itoa(settings.StatsDays),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.DefaultCategory == "" {
		settings.DefaultCategory = Category(constants.DefaultCategory)
	}
	if settings.DefaultEmoji == "" {
		settings.DefaultEmoji = constants.DefaultEmoji
	}
	if settings.DefaultColor == "" {
		settings.DefaultColor = constants.DefaultColor
	}
	if settings.HeatmapDays <= 0 {
		settings.HeatmapDays = constants.DefaultHeatmapDays
	}
	if settings.HistoryDays <= 0 {
		settings.HistoryDays = constants.DefaultHistoryDays
	}
	if settings.StatsDays <= 0 {
		settings.StatsDays = constants.DefaultStatsDays
	}
}
