package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/gridswap/internal/config"
)

func TestLoadBoardsSample(t *testing.T) {
	cfg := config.Default()
	set, err := loadBoards(cfg)
	if err != nil {
		t.Fatalf("loadBoards failed: %v", err)
	}
	if len(set.Boards()) == 0 {
		t.Fatalf("expected sample boards")
	}
}

func TestLoadBoardsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boards.yaml")
	if err := os.WriteFile(path, []byte("boards:\n  - id: only\n    items:\n      - label: one\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg := config.Default()
	cfg.BoardsFile = path
	set, err := loadBoards(cfg)
	if err != nil {
		t.Fatalf("loadBoards failed: %v", err)
	}
	b, ok := set.Get("only")
	if !ok || len(b.Items) != 1 || b.Columns != cfg.Grid.Columns {
		t.Fatalf("unexpected board: %+v", b)
	}
}

func TestSetupLoggingToFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr); log.SetPrefix("") })
	path := filepath.Join(t.TempDir(), "gridswap.log")
	logger, closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	logger.Printf("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestSetupLoggingDisabled(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	logger, closeLog, err := setupLogging("")
	if err != nil || logger != nil {
		t.Fatalf("unexpected result: %v %v", logger, err)
	}
	closeLog()
}
