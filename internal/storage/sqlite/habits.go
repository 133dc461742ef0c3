package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	apperr "github.com/julianstephens/habitus/internal/errors"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/storage"
)

const habitColumns = "id, name, emoji, color, user_id, category, position, created_at, archived_at, deleted_at"

func scanHabit(row storage.RowScanner) (models.Habit, error) {
	var h models.Habit
	var category, createdAt string
	var archivedAt, deletedAt sql.NullString

	if err := row.Scan(&h.ID, &h.Name, &h.Emoji, &h.Color, &h.UserID, &category, &h.Position, &createdAt, &archivedAt, &deletedAt); err != nil {
		return models.Habit{}, err
	}
	h.Category = models.Category(category)

	var err error
	if h.CreatedAt, err = storage.ParseTime(createdAt, "created_at"); err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
	}
	if h.ArchivedAt, err = storage.ParseNullTime(archivedAt, "archived_at"); err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
	}
	if h.DeletedAt, err = storage.ParseNullTime(deletedAt, "deleted_at"); err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
	}
	return h, nil
}

func (s *Store) AddHabit(habit models.Habit) error {
	var next int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(position) + 1, 0) FROM habits").Scan(&next); err != nil {
		return fmt.Errorf("failed to compute habit position: %w", err)
	}
	habit.Position = next
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE id = ? AND deleted_at IS NULL", id)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, apperr.NotFound("habit %s not found", id)
	}
	return h, err
}

// GetHabitByName matches names case-insensitively among live habits.
func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE name = ? COLLATE NOCASE AND deleted_at IS NULL ORDER BY position LIMIT 1",
		strings.TrimSpace(name))
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, apperr.NotFound("habit %q not found", name)
	}
	return h, err
}

func (s *Store) GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error) {
	exists, err := s.tableExists("habits")
	if err != nil || !exists {
		return []models.Habit{}, nil
	}

	query := "SELECT " + habitColumns + " FROM habits WHERE 1=1"
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY position, created_at, id"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	if err := storage.ValidateHabit(habit); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, emoji, color, user_id, category, position, created_at, archived_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			emoji = excluded.emoji,
			color = excluded.color,
			category = excluded.category,
			position = excluded.position,
			archived_at = excluded.archived_at,
			deleted_at = excluded.deleted_at`,
		habit.ID, strings.TrimSpace(habit.Name), habit.Emoji, habit.Color, habit.UserID,
		string(storage.NormalizeCategory(habit.Category)), habit.Position,
		habit.CreatedAt.Format(time.RFC3339), storage.NullTime(habit.ArchivedAt), storage.NullTime(habit.DeletedAt))

	return err
}

// updateOne runs a single-row state change and reports notFoundMsg when no row matched.
func (s *Store) updateOne(notFoundMsg string, query string, args ...interface{}) error {
	result, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("%s", notFoundMsg)
	}
	return nil
}

func (s *Store) ArchiveHabit(id string) error {
	return s.updateOne("habit not found or already archived/deleted",
		"UPDATE habits SET archived_at = ? WHERE id = ? AND deleted_at IS NULL AND archived_at IS NULL",
		storage.Now(), id)
}

func (s *Store) UnarchiveHabit(id string) error {
	return s.updateOne("habit not found or not archived",
		"UPDATE habits SET archived_at = NULL WHERE id = ? AND deleted_at IS NULL AND archived_at IS NOT NULL",
		id)
}

func (s *Store) DeleteHabit(id string) error {
	return s.updateOne("habit not found or already deleted",
		"UPDATE habits SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		storage.Now(), id)
}

func (s *Store) RestoreHabit(id string) error {
	return s.updateOne("habit not found or not deleted",
		"UPDATE habits SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL",
		id)
}

func (s *Store) SetHabitOrder(ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("UPDATE habits SET position = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, id := range ids {
		result, err := stmt.Exec(i, id)
		if err != nil {
			return fmt.Errorf("failed to move habit %s: %w", id, err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return apperr.NotFound("habit %s not found", id)
		}
	}

	return tx.Commit()
}
