package core

import (
	"path/filepath"
	"strings"
)

// isValidToolPath validates that a tool path is safe to execute: a bare
// command name resolved via PATH, or an absolute path. Shell metacharacters
// are rejected outright.
func isValidToolPath(path string) bool {
	if path == "" {
		return false
	}
	if strings.ContainsAny(path, ";|&$`\n\r") {
		return false
	}
	if !strings.Contains(path, "/") {
		return true
	}
	return filepath.IsAbs(path)
}
