package core

import (
	"path/filepath"
	"testing"
)

func TestDefaultPlaybookPath(t *testing.T) {
	t.Parallel()

	got := DefaultPlaybookPath("/lab/env")
	want := filepath.Join("/lab/env", "provisioning", "playbook.yml")
	if got != want {
		t.Errorf("DefaultPlaybookPath(/lab/env) = %q, want %q", got, want)
	}
}

func TestWorkingDir(t *testing.T) {
	t.Parallel()

	wd, err := WorkingDir()

	requireNoError(t, err, "resolving the working directory should succeed")
	if !filepath.IsAbs(wd) {
		t.Errorf("expected an absolute path, got %q", wd)
	}
}
