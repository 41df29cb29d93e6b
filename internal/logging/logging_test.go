package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Console: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("quiet")
	log.Warn("loud")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "loud") {
		t.Error("warn message missing")
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", File: path, Console: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("content loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"content loaded"`) {
		t.Errorf("file log = %s", data)
	}
}

func TestInvalidLevel(t *testing.T) {
	if _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
