package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_setLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("file path routes to file logger", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		if err := setLogger(slog.LevelDebug, path); err != nil {
			t.Fatalf("setLogger() error = %v", err)
		}

		slog.Debug("file logger record")

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(content), "file logger record") {
			t.Errorf("log file does not contain record: %q", string(content))
		}
	})

	t.Run("empty path routes to stderr logger", func(t *testing.T) {
		if err := setLogger(slog.LevelInfo, ""); err != nil {
			t.Fatalf("setLogger() error = %v", err)
		}
		if slog.Default().Enabled(nil, slog.LevelDebug) {
			t.Error("debug level enabled at info level")
		}
	})

	t.Run("unwritable path is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "app.log")
		if err := setLogger(slog.LevelInfo, path); err == nil {
			t.Error("setLogger() error = nil, want error")
		}
	})
}
