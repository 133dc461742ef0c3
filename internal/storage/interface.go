package storage

import (
	"github.com/julianstephens/habitus/internal/migration"
	"github.com/julianstephens/habitus/internal/models"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Schema
	SchemaStatus() (migration.Status, error)
	Migrate(logFn func(string)) (int, error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	// AddHabit appends the habit after every existing habit in display order.
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	// GetAllHabits returns habits in display order (position, then creation).
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error
	// SetHabitOrder assigns positions 0..n-1 to ids in the given order.
	SetHabitOrder(ids []string) error

	// Completions
	// AddCompletion records a completion. A (habit, day) pair holds at most one
	// live log; adding over a deleted one revives it.
	AddCompletion(models.CompletionLog) error
	GetCompletion(habitID, day string) (models.CompletionLog, error)
	// GetCompletionsForDay returns the day's logs for live, unarchived habits.
	GetCompletionsForDay(day string) ([]models.CompletionLog, error)
	// GetCompletionsSince returns logs on or after day for live, unarchived
	// habits, newest day first.
	GetCompletionsSince(day string) ([]models.CompletionLog, error)
	GetCompletionsForHabit(habitID string, startDay, endDay string) ([]models.CompletionLog, error)
	DeleteCompletion(id string) error

	// Bulk Retrieval for Migration
	GetAllCompletions() ([]models.CompletionLog, error)

	// Utils
	GetConfigPath() string
}
