package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		_ = Configure("info", "")
	})

	if err := Configure("warn", ""); err != nil {
		t.Fatalf("Error configuring logger: %s", err)
	}
	if level.Level() != slog.LevelWarn {
		t.Errorf("Expected warn level, got %s", level.Level())
	}
	if BuildLogger().Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("Info should be disabled at warn level")
	}

	if err := Configure("loud", ""); err == nil {
		t.Errorf("Expected an error for an unknown level")
	}
}

func TestConfigureLogFile(t *testing.T) {
	t.Cleanup(func() {
		_ = Configure("info", "")
	})

	logFile := filepath.Join(t.TempDir(), "tsteg.log")
	if err := Configure("debug", logFile); err != nil {
		t.Fatalf("Error configuring logger: %s", err)
	}
	BuildLogger().Info("written to file")

	contents, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Error reading log file: %s", err)
	}
	if len(contents) == 0 {
		t.Errorf("Expected log output in %s", logFile)
	}
}
