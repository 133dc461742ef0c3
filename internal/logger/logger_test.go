package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	err := Init(Config{
		Debug:     false,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("Test debug message")
	Info("Test info message", "habit", "Run")
	Warn("Test warning message")
	Error("Test error message")

	data, err := os.ReadFile(LogPath(configDir))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "Test debug message") {
		t.Error("debug message written outside debug mode")
	}
	if !strings.Contains(content, "Test info message") {
		t.Error("info message missing from log file")
	}
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	err := Init(Config{
		Debug:     true,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Debug("Test debug message")

	data, err := os.ReadFile(LogPath(configDir))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test debug message") {
		t.Error("debug message missing in debug mode")
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Must not panic when the logger has not been initialized.
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

func TestLogPath(t *testing.T) {
	got := LogPath("/tmp/habitus")
	want := filepath.Join("/tmp/habitus", "logs", "habitus.log")
	if got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}
