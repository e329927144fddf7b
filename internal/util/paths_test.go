package util

import (
	"path/filepath"
	"testing"
)

func TestExportDir(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "/data/docs")
	if got := ExportDir("gridswap"); got != filepath.Join("/data/docs", "gridswap") {
		t.Fatalf("ExportDir() = %q", got)
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DOCUMENTS_DIR", "$HOME/Docs")
	if got := ExportDir("gridswap"); got != filepath.Join(home, "Docs", "gridswap") {
		t.Fatalf("ExportDir() with $HOME = %q", got)
	}
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	if got := ExportDir("gridswap"); got != filepath.Join(home, "Documents", "gridswap") {
		t.Fatalf("ExportDir() fallback = %q", got)
	}
}
