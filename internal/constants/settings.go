package constants

const (
	// General Settings
	SettingTimezone        = "timezone"
	SettingUserID          = "user_id"
	SettingDefaultCategory = "default_category"
	SettingDefaultEmoji    = "default_emoji"
	SettingDefaultColor    = "default_color"

	// Window Settings
	SettingHeatmapDays = "heatmap_days"
	SettingHistoryDays = "history_days"
	SettingStatsDays   = "stats_days"

	// Default Settings Values
	DefaultTimezone        = "Local" // Use system local timezone by default
	DefaultCategory        = "other"
	DefaultEmoji           = "✅"
	DefaultColor           = "#6C63FF"
	DefaultHeatmapDays     = 60
	DefaultHistoryDays     = 7
	DefaultStatsDays       = 90
	MaxWindowDays          = 366
	MaxHabitNameLength     = 60
	DefaultHeatmapColumns  = 7
	DefaultProgressBarSize = 30
)
