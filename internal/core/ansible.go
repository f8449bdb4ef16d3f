package core

import "path/filepath"

// Ansible drives the playbook linter and the vault utility. Both tools take
// explicit file arguments, so unlike vagrant they run wherever doit runs.
type Ansible struct {
	lintPath  string
	vaultPath string
	runner    Runner
}

// NewAnsible creates an Ansible service using the given tool binaries.
func NewAnsible(lintPath, vaultPath string, runner Runner) *Ansible {
	if lintPath == "" {
		lintPath = "ansible-lint"
	}
	if vaultPath == "" {
		vaultPath = "ansible-vault"
	}
	return &Ansible{
		lintPath:  filepath.Clean(lintPath),
		vaultPath: filepath.Clean(vaultPath),
		runner:    runner,
	}
}

// LintPlaybook validates a playbook with ansible-lint. Encrypted values
// referenced by the playbook are never read.
func (a *Ansible) LintPlaybook(playbookPath string) error {
	return a.runner.Run(CommandSpec{Name: a.lintPath, Args: []string{playbookPath}})
}

func (a *Ansible) vault(action, vaultFilePath string) error {
	return a.runner.Run(CommandSpec{Name: a.vaultPath, Args: []string{action, vaultFilePath}})
}

// EncryptVault encrypts a file in place; ansible-vault prompts for the
// password on the inherited terminal.
func (a *Ansible) EncryptVault(vaultFilePath string) error {
	return a.vault("encrypt", vaultFilePath)
}

// EditVault opens an encrypted file in the configured editor.
func (a *Ansible) EditVault(vaultFilePath string) error {
	return a.vault("edit", vaultFilePath)
}

// ViewVault prints the decrypted contents of an encrypted file.
func (a *Ansible) ViewVault(vaultFilePath string) error {
	return a.vault("view", vaultFilePath)
}

// RekeyVault re-encrypts a file under a new password, prompting for both
// the current and the new one.
func (a *Ansible) RekeyVault(vaultFilePath string) error {
	return a.vault("rekey", vaultFilePath)
}
