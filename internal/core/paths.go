package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkingDir returns the wrapper's current directory, the anchor for every
// path default.
func WorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return wd, nil
}

// DefaultPlaybookPath returns the conventional playbook location under dir.
func DefaultPlaybookPath(dir string) string {
	return filepath.Join(dir, "provisioning", "playbook.yml")
}
