package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := New(path, true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("opened letter")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "opened letter") {
		t.Fatalf("expected log line, got %q", string(data))
	}
}

func TestNewEmptyPathIsNop(t *testing.T) {
	logger, err := New("", false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("dropped")
}
