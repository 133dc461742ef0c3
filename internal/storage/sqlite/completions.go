package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperr "github.com/julianstephens/habitus/internal/errors"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/storage"
)

const logColumns = "l.id, l.habit_id, l.user_id, l.day, l.note, l.created_at, l.deleted_at"

// liveHabitJoin restricts logs to live, unarchived habits.
const liveHabitJoin = " FROM habit_logs l JOIN habits h ON h.id = l.habit_id" +
	" WHERE l.deleted_at IS NULL AND h.deleted_at IS NULL AND h.archived_at IS NULL"

func scanCompletion(row storage.RowScanner) (models.CompletionLog, error) {
	var l models.CompletionLog
	var createdAt string
	var deletedAt sql.NullString

	if err := row.Scan(&l.ID, &l.HabitID, &l.UserID, &l.Day, &l.Note, &createdAt, &deletedAt); err != nil {
		return models.CompletionLog{}, err
	}

	var err error
	if l.CreatedAt, err = storage.ParseTime(createdAt, "created_at"); err != nil {
		return models.CompletionLog{}, fmt.Errorf("log %s: %w", l.ID, err)
	}
	if l.DeletedAt, err = storage.ParseNullTime(deletedAt, "deleted_at"); err != nil {
		return models.CompletionLog{}, fmt.Errorf("log %s: %w", l.ID, err)
	}
	return l, nil
}

func (s *Store) queryCompletions(query string, args ...interface{}) ([]models.CompletionLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.CompletionLog{}
	for rows.Next() {
		l, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *Store) AddCompletion(log models.CompletionLog) error {
	if err := storage.ValidateCompletion(log); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO habit_logs (id, habit_id, user_id, day, note, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			note = excluded.note,
			deleted_at = NULL`,
		log.ID, log.HabitID, log.UserID, log.Day, log.Note, log.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetCompletion(habitID, day string) (models.CompletionLog, error) {
	row := s.db.QueryRow("SELECT "+logColumns+" FROM habit_logs l WHERE l.habit_id = ? AND l.day = ? AND l.deleted_at IS NULL",
		habitID, day)
	l, err := scanCompletion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CompletionLog{}, apperr.NotFound("no completion for habit %s on %s", habitID, day)
	}
	return l, err
}

func (s *Store) GetCompletionsForDay(day string) ([]models.CompletionLog, error) {
	if err := storage.ValidateDay(day); err != nil {
		return nil, err
	}
	return s.queryCompletions("SELECT "+logColumns+liveHabitJoin+" AND l.day = ? ORDER BY h.position", day)
}

func (s *Store) GetCompletionsSince(day string) ([]models.CompletionLog, error) {
	if err := storage.ValidateDay(day); err != nil {
		return nil, err
	}
	return s.queryCompletions("SELECT "+logColumns+liveHabitJoin+" AND l.day >= ? ORDER BY l.day DESC, h.position", day)
}

func (s *Store) GetCompletionsForHabit(habitID string, startDay, endDay string) ([]models.CompletionLog, error) {
	if err := storage.ValidateDay(startDay); err != nil {
		return nil, err
	}
	if err := storage.ValidateDay(endDay); err != nil {
		return nil, err
	}
	return s.queryCompletions(
		"SELECT "+logColumns+" FROM habit_logs l WHERE l.habit_id = ? AND l.day >= ? AND l.day <= ? AND l.deleted_at IS NULL ORDER BY l.day DESC",
		habitID, startDay, endDay)
}

func (s *Store) DeleteCompletion(id string) error {
	return s.updateOne("completion not found or already deleted",
		"UPDATE habit_logs SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		storage.Now(), id)
}

// GetAllCompletions returns every log, deleted ones included.
func (s *Store) GetAllCompletions() ([]models.CompletionLog, error) {
	exists, err := s.tableExists("habit_logs")
	if err != nil || !exists {
		return []models.CompletionLog{}, nil
	}
	return s.queryCompletions("SELECT " + logColumns + " FROM habit_logs l ORDER BY l.day, l.created_at")
}
