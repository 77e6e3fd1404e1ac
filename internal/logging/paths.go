package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns ~/.minigrep/logs, or a directory under the temp dir
// when the home directory is unknown.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".minigrep", "logs")
	}
	return filepath.Join(home, ".minigrep", "logs")
}

// DefaultLogPath returns the debug log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "minigrep.log")
}
