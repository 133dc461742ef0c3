package constants

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "habitus"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitus/habitus.db"
	Version            = "v0.2.0"

	// EnvConnectionString is consulted when the config flag names PostgreSQL without a URL
	EnvConnectionString = "HABITUS_DB_CONNECTION"
	// EnvFileName is loaded from the config directory before flags are parsed
	EnvFileName = ".env"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitus-"
	BackupFileSuffix = ".db"
)

// Session States
const (
	StateHabits SessionState = iota
	StateCalendar
	StateProfile
	StateAddHabit
	StateSearch
	StateConfirmation
)
