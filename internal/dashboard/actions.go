package dashboard

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperr "github.com/julianstephens/habitus/internal/errors"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
)

// Writer is the write side of storage.Provider used by the mutating actions.
type Writer interface {
	Store
	AddHabit(models.Habit) error
	GetHabitByName(name string) (models.Habit, error)
	SetHabitOrder(ids []string) error
	AddCompletion(models.CompletionLog) error
	GetCompletion(habitID, day string) (models.CompletionLog, error)
	DeleteCompletion(id string) error
}

// NewHabit builds a habit with settings defaults for the blank fields.
func NewHabit(settings models.Settings, name, emoji, color string, category models.Category) models.Habit {
	models.ApplyDefaultSettings(&settings)
	if emoji == "" {
		emoji = settings.DefaultEmoji
	}
	if color == "" {
		color = settings.DefaultColor
	}
	if category == "" || category == models.CategoryAll {
		category = settings.DefaultCategory
	}
	return models.Habit{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Emoji:     emoji,
		Color:     color,
		UserID:    settings.UserID,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
}

// AddHabit stores h unless a live habit already has the same name.
func AddHabit(w Writer, h models.Habit) error {
	if _, err := w.GetHabitByName(h.Name); err == nil {
		return apperr.Conflict("habit with name %q already exists", h.Name)
	} else if !apperr.Is(err, apperr.ErrNotFound) {
		return err
	}
	return w.AddHabit(h)
}

// Toggle flips the completion of habit on day and reports whether it is now done.
func Toggle(w Writer, habit models.Habit, day metrics.Day, note string) (bool, error) {
	existing, err := w.GetCompletion(habit.ID, day.String())
	if err == nil {
		return false, w.DeleteCompletion(existing.ID)
	}
	if !apperr.Is(err, apperr.ErrNotFound) {
		return false, err
	}

	log := models.CompletionLog{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		UserID:    habit.UserID,
		Day:       day.String(),
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	if err := w.AddCompletion(log); err != nil {
		return false, err
	}
	return true, nil
}

// Move shifts the habit with id by delta places among the current habits and
// persists the new order. Moving past either end clamps.
func Move(w Writer, id string, delta int) error {
	habits, err := w.GetAllHabits(false, false)
	if err != nil {
		return err
	}
	from := indexOf(habits, id)
	if from < 0 {
		return apperr.NotFound("habit %s not found", id)
	}
	return MoveTo(w, id, from+delta)
}

// MoveTo places the habit with id at index to among the current habits.
func MoveTo(w Writer, id string, to int) error {
	habits, err := w.GetAllHabits(false, false)
	if err != nil {
		return err
	}
	from := indexOf(habits, id)
	if from < 0 {
		return apperr.NotFound("habit %s not found", id)
	}
	if to < 0 {
		to = 0
	}
	if to > len(habits)-1 {
		to = len(habits) - 1
	}
	if to == from {
		return nil
	}

	ids := make([]string, 0, len(habits))
	for _, h := range habits {
		if h.ID != id {
			ids = append(ids, h.ID)
		}
	}
	ids = append(ids[:to], append([]string{id}, ids[to:]...)...)
	return w.SetHabitOrder(ids)
}

func indexOf(habits []models.Habit, id string) int {
	for i, h := range habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}
