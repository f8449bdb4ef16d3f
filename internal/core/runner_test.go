package core

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestCommandSpec_String(t *testing.T) {
	t.Parallel()

	spec := CommandSpec{Name: "vagrant", Args: []string{"up"}, Dir: "/lab/env"}
	if spec.String() != "vagrant up" {
		t.Errorf("expected 'vagrant up', got %q", spec.String())
	}

	bare := CommandSpec{Name: "vagrant"}
	if bare.String() != "vagrant" {
		t.Errorf("expected 'vagrant', got %q", bare.String())
	}
}

func TestDryRunner_PrintsWithoutExecuting(t *testing.T) {
	t.Parallel()

	// Given: a dry runner writing to a buffer
	var buf bytes.Buffer
	runner := NewDryRunner(&buf)

	// When: running two commands
	err := runner.Run(CommandSpec{Name: "vagrant", Args: []string{"up"}, Dir: "/lab/env"})
	requireNoError(t, err, "dry run should never fail")
	err = runner.Run(CommandSpec{Name: "ansible-lint", Args: []string{"playbook.yml"}})
	requireNoError(t, err, "dry run should never fail")

	// Then: both command lines are printed, nothing is spawned
	want := "+ vagrant up\n+ ansible-lint playbook.yml\n"
	if buf.String() != want {
		t.Errorf("dry run output mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestExecRunner_RejectsUnsafeToolPath(t *testing.T) {
	t.Parallel()

	err := NewExecRunner().Run(CommandSpec{Name: "vagrant; true", Args: []string{"up"}})

	requireError(t, err, "metacharacters in the tool path should be rejected")
}

func TestExecRunner_PropagatesChildExitCode(t *testing.T) {
	t.Parallel()
	skipIfShellUnavailable(t)

	// When: the child exits non-zero
	err := NewExecRunner().Run(CommandSpec{Name: "sh", Args: []string{"-c", "exit 3"}})

	// Then: the error carries the child's own exit code
	requireError(t, err, "non-zero child exit should surface as an error")

	var extErr *ExternalError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExternalError, got %T: %v", err, err)
	}
	if extErr.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", extErr.ExitCode)
	}
	if ExitCode(err) != 3 {
		t.Errorf("expected mapped exit code 3, got %d", ExitCode(err))
	}
}

func TestExecRunner_RunsInRequestedDirectory(t *testing.T) {
	t.Parallel()
	skipIfShellUnavailable(t)

	// Given: a directory containing a marker file
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker"), []byte("x"), 0o644); err != nil { //nolint:gosec // Test file with dummy content
		t.Fatalf("failed to create marker file: %v", err)
	}

	// When: the child checks for the marker relative to its working directory
	err := NewExecRunner().Run(CommandSpec{Name: "sh", Args: []string{"-c", "test -f marker"}, Dir: dir})

	// Then: the check only passes when the child ran inside dir
	requireNoError(t, err, "child should run in the requested directory")
}

func TestExecRunner_ReportsSpawnFailure(t *testing.T) {
	t.Parallel()

	err := NewExecRunner().Run(CommandSpec{Name: "doit-test-no-such-tool", Args: []string{"up"}})

	requireError(t, err, "a missing binary should surface as an error")

	var extErr *ExternalError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected *ExternalError, got %T: %v", err, err)
	}
	if extErr.ExitCode != 0 {
		t.Errorf("expected exit code 0 for a child that never ran, got %d", extErr.ExitCode)
	}
	if ExitCode(err) != 1 {
		t.Errorf("expected mapped exit code 1, got %d", ExitCode(err))
	}
}

func skipIfShellUnavailable(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available in PATH")
	}
}
