package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// NullTime converts an optional timestamp to its stored RFC3339 form.
func NullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

// ParseNullTime parses an optional stored timestamp. column names the field in errors.
func ParseNullTime(s sql.NullString, column string) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return &t, nil
}

// ParseTime parses a required stored timestamp. column names the field in errors.
func ParseTime(s string, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// Now returns the current time formatted for storage.
func Now() string {
	return time.Now().Format(time.RFC3339)
}
