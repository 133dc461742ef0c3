package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitus/internal/cli"
	"github.com/julianstephens/habitus/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if !ctx.IsSQLite() {
			return fmt.Errorf("--force is only supported for SQLite databases")
		}
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habitus storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.migrateData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context) error {
	source, err := cli.OpenStore(c.Source)
	if err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	return copyData(source, ctx.Store)
}

// copyData copies settings, habits and live completion logs from src to dst,
// keeping ids, positions and timestamps.
func copyData(src, dst storage.Provider) error {
	fmt.Println("  Migrating settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating habits...")
	habits, err := src.GetAllHabits(true, true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	for _, habit := range habits {
		if err := dst.UpdateHabit(habit); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", habit.ID, err)
		}
	}
	fmt.Printf("    Migrated %d habits\n", len(habits))

	fmt.Println("  Migrating completion logs...")
	logs, err := src.GetAllCompletions()
	if err != nil {
		return fmt.Errorf("failed to get completion logs from source: %w", err)
	}
	copied := 0
	for _, log := range logs {
		if log.DeletedAt != nil {
			continue
		}
		if err := dst.AddCompletion(log); err != nil {
			return fmt.Errorf("failed to add completion log %s: %w", log.ID, err)
		}
		copied++
	}
	fmt.Printf("    Migrated %d completion logs\n", copied)

	return nil
}
