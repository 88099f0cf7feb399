package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.log")

	logger, closeLog, err := newLogger(path, "debug", false)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("brick destroyed", "row", 2)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "brick destroyed") || !strings.Contains(string(data), "breakout") {
		t.Errorf("log file = %q", data)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", logger.GetLevel())
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud", false); err == nil {
		t.Error("unknown level should fail")
	}
}
