// Package core implements the command catalog behind the doit CLI and the
// machinery that runs external tools with the user's terminal attached.
package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CommandSpec is a single external invocation: an argv plus the directory
// it runs in. An empty Dir inherits the wrapper's working directory.
type CommandSpec struct {
	Name string
	Args []string
	Dir  string
}

// String renders the invocation as a shell-like command line.
func (c CommandSpec) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes external commands.
type Runner interface {
	Run(spec CommandSpec) error
}

// ExecRunner runs commands synchronously with the wrapper's stdio attached,
// so interactive children (vagrant ssh, ansible-vault password prompts) own
// the terminal until they exit.
type ExecRunner struct{}

// NewExecRunner creates a runner that spawns real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run spawns the command and blocks until it exits. A non-zero exit or a
// failed spawn comes back as an *ExternalError carrying the child's status.
func (r *ExecRunner) Run(spec CommandSpec) error {
	if !isValidToolPath(spec.Name) {
		return fmt.Errorf("invalid tool path: %s", spec.Name)
	}

	cmd := exec.Command(spec.Name, spec.Args...) //nolint:gosec // spec.Name validated by isValidToolPath()
	cmd.Dir = spec.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.WithFields(log.Fields{"dir": spec.Dir}).Debugf("executing: %s", spec)

	if err := cmd.Run(); err != nil {
		return &ExternalError{
			Tool:     spec.Name,
			Args:     spec.Args,
			Dir:      spec.Dir,
			ExitCode: exitStatus(err),
			Cause:    err,
		}
	}
	return nil
}

// exitStatus extracts the child's exit code, zero when it never ran.
func exitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 0
}

// DryRunner prints the commands it would run, one per line, without
// spawning anything.
type DryRunner struct {
	Out io.Writer
}

// NewDryRunner creates a runner that only prints command lines to out.
func NewDryRunner(out io.Writer) *DryRunner {
	return &DryRunner{Out: out}
}

func (r *DryRunner) Run(spec CommandSpec) error {
	fmt.Fprintln(r.Out, "+ "+spec.String())
	return nil
}
