package core

import "path/filepath"

// Vagrant drives the VM lifecycle tool. Every operation runs in the
// directory holding the Vagrantfile, which is how vagrant locates it.
type Vagrant struct {
	path   string
	dir    string
	runner Runner
}

// NewVagrant creates a Vagrant service for the Vagrantfile in dir.
func NewVagrant(path, dir string, runner Runner) *Vagrant {
	if path == "" {
		path = "vagrant"
	}
	cleanPath := filepath.Clean(path)
	return &Vagrant{
		path:   cleanPath,
		dir:    dir,
		runner: runner,
	}
}

func (v *Vagrant) run(args ...string) error {
	return v.runner.Run(CommandSpec{Name: v.path, Args: args, Dir: v.dir})
}

// Validate checks the Vagrantfile definition.
func (v *Vagrant) Validate() error {
	return v.run("validate")
}

// Up creates and provisions the virtual machine.
func (v *Vagrant) Up() error {
	return v.run("up")
}

// Status reports the state of the virtual machine.
func (v *Vagrant) Status() error {
	return v.run("status")
}

// SSH opens an interactive session into the virtual machine.
func (v *Vagrant) SSH() error {
	return v.run("ssh")
}

// Provision re-runs provisioning on the existing virtual machine.
func (v *Vagrant) Provision() error {
	return v.run("provision")
}

// Destroy tears the virtual machine down.
func (v *Vagrant) Destroy() error {
	return v.run("destroy")
}
