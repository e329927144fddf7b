package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExportDir is where layout snapshots are written: $XDG_DOCUMENTS_DIR/<app>
// when set, ~/Documents/<app> otherwise, the working directory as a last
// resort.
func ExportDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return filepath.Join(expandHome(base), app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, "Documents", app)
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, _ := os.UserHomeDir()
	return strings.ReplaceAll(path, "$HOME", home)
}
