package models

// Settings represents application-wide settings
type Settings struct {
	Timezone        string   `json:"timezone"`         // IANA timezone name, or "Local" for the system timezone
	UserID          string   `json:"user_id"`          // owner recorded on new habits and logs
	DefaultCategory Category `json:"default_category"` // category applied when none is given
	DefaultEmoji    string   `json:"default_emoji"`
	DefaultColor    string   `json:"default_color"`
	HeatmapDays     int      `json:"heatmap_days"` // calendar heatmap window
	HistoryDays     int      `json:"history_days"` // per-habit mini history window
	StatsDays       int      `json:"stats_days"`   // statistics window
}
