package core

import (
	"strings"
	"testing"
)

const testPlaybookPath = "/lab/provisioning/playbook.yml"

func TestLab_Validate_ChecksVagrantfileThenPlaybook(t *testing.T) {
	t.Parallel()

	// Given: a lab whose tools all succeed
	runner := &recordingRunner{}
	lab := newTestLab(runner)

	// When: validating both definitions
	err := lab.Validate(testPlaybookPath)

	// Then: vagrant validate runs first, ansible-lint second
	requireNoError(t, err, "validation should succeed")
	verifyCommandLines(t, runner.specs, []string{
		"vagrant validate",
		"ansible-lint " + testPlaybookPath,
	})
}

func TestLab_Validate_SkipsLintWhenVagrantfileFails(t *testing.T) {
	t.Parallel()

	// Given: vagrant validate fails
	runner := &recordingRunner{failOn: "vagrant validate"}
	lab := newTestLab(runner)

	// When: validating
	err := lab.Validate(testPlaybookPath)

	// Then: the playbook is never linted
	requireError(t, err, "validation should fail with the Vagrantfile")
	verifyCommandLines(t, runner.specs, []string{"vagrant validate"})
}

func TestLab_Setup_ValidatesBeforeUp(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	lab := newTestLab(runner)

	err := lab.Setup(testPlaybookPath)

	requireNoError(t, err, "setup should succeed")
	verifyCommandLines(t, runner.specs, []string{
		"vagrant validate",
		"ansible-lint " + testPlaybookPath,
		"vagrant up",
	})
}

func TestLab_Setup_StopsWhenVagrantfileFails(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{failOn: "vagrant validate"}
	lab := newTestLab(runner)

	err := lab.Setup(testPlaybookPath)

	requireError(t, err, "setup should fail with the Vagrantfile")
	verifyCommandLines(t, runner.specs, []string{"vagrant validate"})
}

func TestLab_Setup_StopsWhenLintFails(t *testing.T) {
	t.Parallel()

	// Given: the playbook lint fails
	runner := &recordingRunner{failOn: "ansible-lint"}
	lab := newTestLab(runner)

	// When: setting up
	err := lab.Setup(testPlaybookPath)

	// Then: the machine is never brought up
	requireError(t, err, "setup should fail with the playbook")
	verifyCommandLines(t, runner.specs, []string{
		"vagrant validate",
		"ansible-lint " + testPlaybookPath,
	})
}

func TestLab_Reprovision_ValidatesBeforeProvision(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{}
	lab := newTestLab(runner)

	err := lab.Reprovision(testPlaybookPath)

	requireNoError(t, err, "reprovision should succeed")
	verifyCommandLines(t, runner.specs, []string{
		"vagrant validate",
		"ansible-lint " + testPlaybookPath,
		"vagrant provision",
	})
}

func TestLab_Setup_IsStateless(t *testing.T) {
	t.Parallel()

	// Given: a lab set up once already
	runner := &recordingRunner{}
	lab := newTestLab(runner)
	requireNoError(t, lab.Setup(testPlaybookPath), "first setup should succeed")

	// When: setting up again
	requireNoError(t, lab.Setup(testPlaybookPath), "second setup should succeed")

	// Then: the second run spawns exactly the same commands
	if len(runner.specs) != 6 {
		t.Fatalf("expected 6 commands after two runs, got %d", len(runner.specs))
	}
	for i := 0; i < 3; i++ {
		first, second := runner.specs[i], runner.specs[i+3]
		if first.String() != second.String() || first.Dir != second.Dir {
			t.Errorf("command %d differs between runs: %v vs %v", i, first, second)
		}
	}
}

// Lab test helpers

// recordingRunner captures the commands a service would run, failing the
// first one whose rendered line contains failOn.
type recordingRunner struct {
	specs  []CommandSpec
	failOn string
}

func (r *recordingRunner) Run(spec CommandSpec) error {
	r.specs = append(r.specs, spec)
	if r.failOn != "" && strings.Contains(spec.String(), r.failOn) {
		return &ExternalError{Tool: spec.Name, Args: spec.Args, Dir: spec.Dir, ExitCode: 1}
	}
	return nil
}

func newTestLab(runner Runner) *Lab {
	vagrant := NewVagrant("", "/lab/env", runner)
	ansible := NewAnsible("", "", runner)
	return NewLab(vagrant, ansible)
}

func requireNoError(t *testing.T, err error, message string) {
	t.Helper()

	if err != nil {
		t.Fatalf("%s: got error %v", message, err)
	}
}

func requireError(t *testing.T, err error, message string) {
	t.Helper()

	if err == nil {
		t.Fatalf("%s: expected error but got nil", message)
	}
}

func verifyCommandLines(t *testing.T, specs []CommandSpec, want []string) {
	t.Helper()

	if len(specs) != len(want) {
		t.Fatalf("expected %d commands, got %d: %v", len(want), len(specs), specs)
	}
	for i, spec := range specs {
		if spec.String() != want[i] {
			t.Errorf("command %d mismatch: got %q, want %q", i, spec.String(), want[i])
		}
	}
}
