package core

import (
	"errors"
	"fmt"
	"strings"
)

// ExternalError represents a failed external tool invocation
type ExternalError struct {
	Cause    error
	Tool     string   // binary as invoked
	Args     []string // arguments after the binary
	Dir      string   // working directory, empty when inherited
	ExitCode int      // child's exit code, zero when it never ran
}

func (e *ExternalError) Error() string {
	line := strings.Join(append([]string{e.Tool}, e.Args...), " ")
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s exited with code %d", line, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", line, e.Cause)
}

func (e *ExternalError) Category() string {
	return "external"
}

func (e *ExternalError) Unwrap() error {
	return e.Cause
}

// ExitCode maps an error from Execute to the wrapper's process exit status.
// A failed external command keeps the child's own exit code; anything else
// is a plain failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var extErr *ExternalError
	if errors.As(err, &extErr) && extErr.ExitCode > 0 {
		return extErr.ExitCode
	}
	return 1
}
