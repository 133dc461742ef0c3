package models

import "time"

// Habit represents a practice the user intends to repeat daily
type Habit struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Emoji      string     `json:"emoji"`
	Color      string     `json:"color"`
	UserID     string     `json:"user_id"`
	Category   Category   `json:"category"`
	Position   int        `json:"position"`
	CreatedAt  time.Time  `json:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// CompletionLog records that a habit was completed on a calendar day.
// At most one live log exists per (HabitID, Day).
type CompletionLog struct {
	ID        string     `json:"id"`
	HabitID   string     `json:"habit_id"`
	UserID    string     `json:"user_id"`
	Day       string     `json:"day"` // YYYY-MM-DD format
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
