package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/logger"
	"github.com/julianstephens/habitus/internal/migration"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/storage"
	"github.com/julianstephens/habitus/migrations"
)

var _ storage.Provider = (*Store)(nil)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) open() error {
	// busy_timeout lets the dashboard's concurrent readers wait out a writer
	db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	if _, err := s.Migrate(func(msg string) { fmt.Println(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return s.ensureDefaultSettings()
}

// ensureDefaultSettings fills in any settings missing from a fresh or older database.
func (s *Store) ensureDefaultSettings() error {
	settings, err := s.GetSettings()
	if err != nil {
		settings = models.Settings{}
	}
	if settings.UserID == "" {
		settings.UserID = uuid.NewString()
		logger.Info("Generated user id", "user_id", settings.UserID)
	}
	models.ApplyDefaultSettings(&settings)
	if err := s.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save default settings: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	if err := s.open(); err != nil {
		return err
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DialectSQLite), nil
}

// Migrate applies pending schema migrations.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	runner, err := s.runner()
	if err != nil {
		return 0, err
	}
	return runner.ApplyMigrations(logFn)
}

// SchemaStatus reports the database schema version against the embedded migrations.
func (s *Store) SchemaStatus() (migration.Status, error) {
	runner, err := s.runner()
	if err != nil {
		return migration.Status{}, err
	}
	return runner.Status()
}

// tableExists checks if a table exists in the SQLite database (case-insensitive).
func (s *Store) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, nil before Init or Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
