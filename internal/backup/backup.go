// Package backup keeps rotating snapshots of the SQLite database next to it.
package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	ps "github.com/mitchellh/go-ps"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitus/internal/constants"
	"github.com/julianstephens/habitus/internal/logger"
)

const timestampLayout = "20060102-150405"

// ErrInUse is returned by Restore while another habitus process is running.
var ErrInUse = errors.New("database is in use by another habitus process")

// Info describes one snapshot file.
type Info struct {
	Path      string
	Name      string
	Timestamp time.Time
	Size      int64
}

// HumanSize formats the file size for listings.
func (i Info) HumanSize() string {
	return humanize.Bytes(uint64(i.Size))
}

// Age formats the snapshot time relative to now, e.g. "3 hours ago".
func (i Info) Age() string {
	return humanize.Time(i.Timestamp)
}

// Manager creates, lists, rotates and restores snapshots.
type Manager struct {
	dbPath    string
	backupDir string
	keep      int

	now       func() time.Time
	processes func() ([]ps.Process, error)
	selfPID   int
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
		keep:      constants.MaxBackups,
		now:       time.Now,
		processes: ps.Processes,
		selfPID:   os.Getpid(),
	}
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// Create snapshots the database and prunes snapshots beyond the retention limit.
func (m *Manager) Create() (Info, error) {
	info, err := m.create()
	if err != nil {
		return Info{}, err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return info, nil
}

func (m *Manager) create() (Info, error) {
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return Info{}, fmt.Errorf("database does not exist: %s", m.dbPath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return Info{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	ts := m.now()
	path, err := m.freePath(ts)
	if err != nil {
		return Info{}, err
	}

	if err := vacuumInto(m.dbPath, path); err != nil {
		return Info{}, fmt.Errorf("failed to backup database: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}
	logger.Debug("Created backup", "path", path)
	return Info{Path: path, Name: filepath.Base(path), Timestamp: ts.Truncate(time.Second), Size: st.Size()}, nil
}

// freePath picks habitus-YYYYMMDD-HHMMSS.db, adding -N when that name is taken.
func (m *Manager) freePath(ts time.Time) (string, error) {
	stamp := ts.Format(timestampLayout)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if n > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, n, constants.BackupFileSuffix))
	}
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if err := ping(db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		logger.Warn("VACUUM INTO failed, falling back to file copy", "error", err)
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

func ping(db *sql.DB) error {
	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

// parseName extracts the timestamp from a snapshot file name.
func parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)

	// strip a collision counter: YYYYMMDD-HHMMSS-N
	if parts := strings.Split(stamp, "-"); len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return time.Time{}, false
		}
		stamp = parts[0] + "-" + parts[1]
	}

	ts, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// List returns snapshots newest first. Files that don't look like snapshots are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		st, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Name:      entry.Name(),
			Timestamp: ts,
			Size:      st.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Name > backups[j].Name
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Name, err)
		}
		logger.Debug("Removed old backup", "path", backups[i].Path)
	}
	return nil
}

// Resolve accepts a snapshot file name from List or a path.
func (m *Manager) Resolve(nameOrPath string) string {
	if filepath.Base(nameOrPath) == nameOrPath {
		candidate := filepath.Join(m.backupDir, nameOrPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return nameOrPath
}

// otherInstances counts running habitus processes besides this one.
func (m *Manager) otherInstances() (int, error) {
	procs, err := m.processes()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range procs {
		if p.Pid() == m.selfPID {
			continue
		}
		if strings.TrimSuffix(p.Executable(), ".exe") == constants.AppName {
			n++
		}
	}
	return n, nil
}

// Restore replaces the database with the snapshot at path. The current
// database is snapshotted first, outside of rotation.
func (m *Manager) Restore(path string) (Info, error) {
	if n, err := m.otherInstances(); err != nil {
		logger.Warn("Could not list running processes", "error", err)
	} else if n > 0 {
		return Info{}, fmt.Errorf("%w (%d running)", ErrInUse, n)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Info{}, fmt.Errorf("backup file does not exist: %s", path)
	}
	if err := verify(path); err != nil {
		return Info{}, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var safety Info
	if _, err := os.Stat(m.dbPath); err == nil {
		safety, err = m.create()
		if err != nil {
			return Info{}, fmt.Errorf("failed to backup current database before restore: %w", err)
		}
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return Info{}, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return Info{}, fmt.Errorf("failed to restore database: %w", err)
	}

	logger.Info("Restored database", "from", path)
	return safety, nil
}

func verify(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	return ping(db)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
