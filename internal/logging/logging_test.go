package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_RejectsBadLevelAndFormat(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNew_DefaultsAreValid(t *testing.T) {
	log, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	log.Info("hello")
	_ = log.Sync()
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchdeck.log")
	log, err := New(Options{File: path, Format: "json", Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	log.Info("page generated")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "page generated") {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestNew_QuietWithoutFileIsNop(t *testing.T) {
	log, err := New(Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	// Must be safe to use even with no sinks.
	log.Warn("dropped")
}
