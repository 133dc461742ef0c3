package backups

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/habitus/internal/backup"
	"github.com/julianstephens/habitus/internal/cli"
	"github.com/julianstephens/habitus/internal/constants"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup now."`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
}

var errNotSQLite = errors.New("backups are only available for SQLite databases")

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return errNotSQLite
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	info, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s (%s)\n", info.Name, info.HumanSize())
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return errNotSQLite
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		fmt.Printf("  %s  %-32s %8s  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Name, b.HumanSize(), b.Age())
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.Dir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`

	in io.Reader `kong:"-"`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return errNotSQLite
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := resolveBackupPath(mgr, c.BackupFile)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your current database with the backup.")
		fmt.Println("A backup of your current database will be created before restoring.")
		fmt.Printf("\nRestore from: %s\n", backupPath)
		fmt.Print("Continue? [y/N]: ")

		in := c.in
		if in == nil {
			in = os.Stdin
		}
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	safety, err := mgr.Restore(backupPath)
	if errors.Is(err, backup.ErrInUse) {
		return fmt.Errorf("%w; close the TUI and other habitus commands first", err)
	}
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Database restored successfully!")
	if safety.Name != "" {
		fmt.Printf("  Previous database saved as %s\n", safety.Name)
	}
	return nil
}

// resolveBackupPath accepts an absolute path, a path relative to the working
// directory, or a file name inside the backup directory.
func resolveBackupPath(mgr *backup.Manager, name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("backup file not found: %s", name)
		}
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return filepath.Abs(name)
	}
	if resolved := mgr.Resolve(name); resolved != name {
		return resolved, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", mgr.Dir())
}
