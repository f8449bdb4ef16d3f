// Package cmd provides the CLI commands for the doit tool
package cmd

import (
	"github.com/doitcli/doit/internal/core"
	"github.com/spf13/cobra"
)

// The subcommands share three argument groups. Vagrantfile and vault file
// deliberately reuse the -f shorthand: no subcommand takes both.

func addVagrantfileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("vagrantfile-path", "f", "", "directory holding the Vagrantfile (default: current directory)")
}

func addPlaybookFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("playbook-path", "p", "", "path to the playbook (default: ./provisioning/playbook.yml)")
}

func addVaultFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("vault-file-path", "f", "", "file handled by ansible-vault")
	_ = cmd.MarkFlagRequired("vault-file-path")
}

// runE wraps a command handler so that errors raised after flag parsing,
// typically a failed external tool, are not followed by a usage dump.
func runE(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return fn(cmd, args)
	}
}

// loadConfig reads the configured doit.yaml. An explicitly given --config
// file must exist; the default ./doit.yaml may be absent.
func loadConfig(cmd *cobra.Command) (*core.Config, error) {
	if cmd.Flags().Changed("config") {
		path, _ := cmd.Flags().GetString("config") //nolint:errcheck // Flag is defined, error impossible
		return core.LoadConfig(path)
	}
	return core.LoadConfigIfPresent(core.DefaultConfigFile)
}

// resolveVagrantfileDir applies flag over config over current directory.
func resolveVagrantfileDir(cmd *cobra.Command, cfg *core.Config) (string, error) {
	if cmd.Flags().Changed("vagrantfile-path") {
		dir, _ := cmd.Flags().GetString("vagrantfile-path") //nolint:errcheck // Flag is defined, error impossible
		return dir, nil
	}
	if cfg.VagrantfilePath != "" {
		return cfg.VagrantfilePath, nil
	}
	return core.WorkingDir()
}

// resolvePlaybookPath applies flag over config over the conventional
// provisioning/playbook.yml under the current directory.
func resolvePlaybookPath(cmd *cobra.Command, cfg *core.Config) (string, error) {
	if cmd.Flags().Changed("playbook-path") {
		path, _ := cmd.Flags().GetString("playbook-path") //nolint:errcheck // Flag is defined, error impossible
		return path, nil
	}
	if cfg.PlaybookPath != "" {
		return cfg.PlaybookPath, nil
	}
	wd, err := core.WorkingDir()
	if err != nil {
		return "", err
	}
	return core.DefaultPlaybookPath(wd), nil
}

// resolveToolPath applies flag over config over the flag's built-in default
// for a tool binary.
func resolveToolPath(cmd *cobra.Command, flagName, cfgValue string) string {
	path, _ := cmd.Flags().GetString(flagName) //nolint:errcheck // Flag is defined, error impossible
	if cmd.Flags().Changed(flagName) {
		return path
	}
	if cfgValue != "" {
		return cfgValue
	}
	return path
}

// newRunner picks the dry-run printer or the real executor.
func newRunner(cmd *cobra.Command) core.Runner {
	dryRun, _ := cmd.Flags().GetBool("dry-run") //nolint:errcheck // Flag is defined, error impossible
	if dryRun {
		return core.NewDryRunner(cmd.ErrOrStderr())
	}
	return core.NewExecRunner()
}

// newVagrant builds the vagrant service for VM lifecycle subcommands.
func newVagrant(cmd *cobra.Command) (*core.Vagrant, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dir, err := resolveVagrantfileDir(cmd, cfg)
	if err != nil {
		return nil, err
	}
	path := resolveToolPath(cmd, "vagrant-path", cfg.Tools.Vagrant)
	return core.NewVagrant(path, dir, newRunner(cmd)), nil
}

// newAnsible builds the ansible service for lint and vault subcommands.
func newAnsible(cmd *cobra.Command) (*core.Ansible, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	lintPath := resolveToolPath(cmd, "ansible-lint-path", cfg.Tools.AnsibleLint)
	vaultPath := resolveToolPath(cmd, "ansible-vault-path", cfg.Tools.AnsibleVault)
	return core.NewAnsible(lintPath, vaultPath, newRunner(cmd)), nil
}

// newLab builds both services plus the resolved playbook path for the
// subcommands that validate before acting.
func newLab(cmd *cobra.Command) (*core.Lab, string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	dir, err := resolveVagrantfileDir(cmd, cfg)
	if err != nil {
		return nil, "", err
	}
	playbookPath, err := resolvePlaybookPath(cmd, cfg)
	if err != nil {
		return nil, "", err
	}

	runner := newRunner(cmd)
	vagrant := core.NewVagrant(resolveToolPath(cmd, "vagrant-path", cfg.Tools.Vagrant), dir, runner)
	ansible := core.NewAnsible(
		resolveToolPath(cmd, "ansible-lint-path", cfg.Tools.AnsibleLint),
		resolveToolPath(cmd, "ansible-vault-path", cfg.Tools.AnsibleVault),
		runner,
	)
	return core.NewLab(vagrant, ansible), playbookPath, nil
}
