package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/habitus/internal/backup"
	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/dashboard"
	"github.com/julianstephens/habitus/internal/keyring"
	"github.com/julianstephens/habitus/internal/logger"
	"github.com/julianstephens/habitus/internal/metrics"
	"github.com/julianstephens/habitus/internal/models"
	"github.com/julianstephens/habitus/internal/storage"
	"github.com/julianstephens/habitus/internal/storage/postgres"
	"github.com/julianstephens/habitus/internal/storage/sqlite"
	"github.com/julianstephens/habitus/internal/utils"
)

type Context struct {
	Store storage.Provider
	// Ctx bounds blocking work such as dashboard loads. Nil means background.
	Ctx context.Context
}

func (c *Context) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// IsSQLite reports whether the store is a local database file.
func (c *Context) IsSQLite() bool {
	_, ok := c.Store.(*sqlite.Store)
	return ok
}

// PerformAutomaticBackup snapshots a SQLite database and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if !c.IsSQLite() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Settings returns the stored settings with defaults applied.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Calendar returns the viewer's calendar in the configured timezone.
func (c *Context) Calendar() (metrics.Calendar, error) {
	settings, err := c.Settings()
	if err != nil {
		return metrics.Calendar{}, err
	}
	return utils.CalendarFromSettings(settings)
}

// Loader builds a dashboard loader from the stored settings.
func (c *Context) Loader() (*dashboard.Loader, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}
	cal, err := utils.CalendarFromSettings(settings)
	if err != nil {
		return nil, err
	}
	return dashboard.NewLoader(c.Store, cal, dashboard.WindowsFromSettings(settings)), nil
}

// Load fetches one dashboard snapshot.
func (c *Context) Load() (*dashboard.Loader, dashboard.Data, error) {
	loader, err := c.Loader()
	if err != nil {
		return nil, dashboard.Data{}, err
	}
	data, err := loader.Load(c.context())
	if err != nil {
		return nil, dashboard.Data{}, err
	}
	return loader, data, nil
}

// ResolveHabit finds a live habit by name, falling back to an ID match.
func (c *Context) ResolveHabit(nameOrID string) (models.Habit, error) {
	habit, err := c.Store.GetHabitByName(nameOrID)
	if err == nil {
		return habit, nil
	}
	if byID, idErr := c.Store.GetHabit(nameOrID); idErr == nil {
		return byID, nil
	}
	return models.Habit{}, err
}

// OpenStore picks the storage backend for config. "postgres" or "postgresql"
// alone means the connection string comes from the environment or the keyring,
// the only places credentials may be embedded.
func OpenStore(config string) (storage.Provider, error) {
	config = strings.TrimSpace(config)

	if config == "postgres" || config == "postgresql" {
		connStr, err := resolveConnString()
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	}

	if utils.IsPostgresConnString(config) {
		if postgres.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("%w: use the OS keyring (%s keyring set), %s, or .pgpass",
				postgres.ErrEmbeddedCredentials, constants.AppName, constants.EnvConnectionString)
		}
		return postgres.New(config), nil
	}

	path, err := utils.ExpandHome(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

func resolveConnString() (string, error) {
	if connStr := os.Getenv(constants.EnvConnectionString); connStr != "" {
		logger.Debug("Using connection string from environment", "var", constants.EnvConnectionString)
		return connStr, nil
	}
	connStr, err := keyring.GetConnectionString()
	if err == nil {
		logger.Debug("Using connection string from keyring")
		return connStr, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("no PostgreSQL connection string: set %s or run '%s keyring set'",
			constants.EnvConnectionString, constants.AppName)
	}
	return "", err
}
