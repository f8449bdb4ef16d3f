// Package main implements the doit CLI, a thin wrapper around the vagrant
// and ansible commands used to manage a provisioned virtual machine.
package main

import (
	"os"

	"github.com/doitcli/doit/internal/cmd"
	"github.com/doitcli/doit/internal/core"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(core.ExitCode(err))
	}
}
