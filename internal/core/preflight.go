package core

import (
	"fmt"
	"os/exec"
	"strings"
)

// CheckTool resolves a tool binary and probes its version. It returns the
// first line the tool reports for --version.
func CheckTool(path string) (string, error) {
	if !isValidToolPath(path) {
		return "", fmt.Errorf("invalid tool path: %s", path)
	}

	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH", path)
	}

	out, err := exec.Command(resolved, "--version").Output() //nolint:gosec // path validated by isValidToolPath()
	if err != nil {
		return "", fmt.Errorf("%s --version failed: %w", path, err)
	}

	version := strings.TrimSpace(string(out))
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = strings.TrimSpace(version[:i])
	}
	return version, nil
}
