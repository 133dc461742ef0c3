package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habitus/internal/cli"
	"github.com/julianstephens/habitus/internal/cli/backups"
	"github.com/julianstephens/habitus/internal/cli/settings"
	"github.com/julianstephens/habitus/internal/cli/system"
	"github.com/julianstephens/habitus/internal/constants"
	apperr "github.com/julianstephens/habitus/internal/errors"
	"github.com/julianstephens/habitus/internal/logger"
	"github.com/julianstephens/habitus/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. Use 'postgres' to read the connection string from ${env_conn} or the OS keyring; credentials must not be embedded in --config." type:"string" default:"${default_config}" env:"HABITUS_CONFIG"`
	Debug   bool   `help:"Log debug output to stderr." env:"HABITUS_DEBUG"`

	Init     system.InitCmd       `cmd:"" help:"Initialize habitus storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit    cli.HabitCmd         `cmd:"" help:"Manage habits and mark completions."`
	Stats    cli.StatsCmd         `cmd:"" help:"Show summary statistics."`
	Calendar cli.CalendarCmd      `cmd:"" help:"Show the activity heatmap."`
	Profile  cli.ProfileCmd       `cmd:"" help:"Show stats, categories and badges."`
	Badges   cli.BadgesCmd        `cmd:"" help:"Show earned and locked badges."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// storeless commands manage the database themselves or never touch it.
var storeless = []string{"init", "doctor", "keyring"}

func main() {
	configDir := loadEnvFile()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily habit tracker with streaks, heatmaps and badges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"env_conn":       constants.EnvConnectionString,
		},
	)

	if dir, ok := sqliteDir(CLI.Config); ok {
		configDir = dir
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		apperr.Fatal(err)
	}
	defer store.Close()

	command := ctx.Command()
	if !CLI.Init.Force && !isStoreless(command) {
		if err := store.Load(); err != nil {
			store.Close()
			apperr.Fatal(err)
		}
	}

	logger.Debug("Running command", "command", command)
	if err := ctx.Run(&cli.Context{Store: store}); err != nil {
		store.Close()
		apperr.Fatal(err)
	}
}

func isStoreless(command string) bool {
	for _, name := range storeless {
		if command == name || strings.HasPrefix(command, name+" ") {
			return true
		}
	}
	return false
}

// loadEnvFile reads .env from the config directory without overriding the
// environment, and returns that directory.
func loadEnvFile() string {
	config := os.Getenv("HABITUS_CONFIG")
	if config == "" {
		config = constants.DefaultConfigPath
	}
	dir, ok := sqliteDir(config)
	if !ok {
		dir, _ = sqliteDir(constants.DefaultConfigPath)
	}

	envPath := filepath.Join(dir, constants.EnvFileName)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envPath, err)
		}
	}
	return dir
}

// sqliteDir returns the directory holding a SQLite config path.
func sqliteDir(config string) (string, bool) {
	if config == "postgres" || config == "postgresql" || utils.IsPostgresConnString(config) {
		return "", false
	}
	path, err := utils.ExpandHome(config)
	if err != nil {
		return "", false
	}
	return filepath.Dir(path), true
}
