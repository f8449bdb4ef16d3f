package cmd

import (
	"github.com/doitcli/doit/internal/core"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the Vagrantfile and the Ansible playbook",
	Long: `Run both definition checks: vagrant validate against the Vagrantfile,
then ansible-lint against the playbook. The playbook check is skipped when
the Vagrantfile fails.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		lab, playbookPath, err := newLab(cmd)
		if err != nil {
			return err
		}
		return lab.Validate(playbookPath)
	}),
}

var validateVagrantCmd = &cobra.Command{
	Use:     "validate_vagrant",
	Aliases: []string{"validate-vagrant"},
	Short:   "Validate the Vagrantfile (vagrant validate)",
	Args:    cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		vagrant, err := newVagrant(cmd)
		if err != nil {
			return err
		}
		return vagrant.Validate()
	}),
}

var validatePlaybookCmd = &cobra.Command{
	Use:     "validate_playbook",
	Aliases: []string{"validate-playbook"},
	Short:   "Lint the Ansible playbook (ansible-lint)",
	Long: `Check the playbook with ansible-lint. Vault-encrypted values referenced
by the playbook stay encrypted; linting never needs the vault password.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		playbookPath, err := resolvePlaybookPath(cmd, cfg)
		if err != nil {
			return err
		}
		ansible := core.NewAnsible(
			resolveToolPath(cmd, "ansible-lint-path", cfg.Tools.AnsibleLint),
			resolveToolPath(cmd, "ansible-vault-path", cfg.Tools.AnsibleVault),
			newRunner(cmd),
		)
		return ansible.LintPlaybook(playbookPath)
	}),
}

func init() {
	addVagrantfileFlag(validateCmd)
	addPlaybookFlag(validateCmd)
	rootCmd.AddCommand(validateCmd)

	addVagrantfileFlag(validateVagrantCmd)
	rootCmd.AddCommand(validateVagrantCmd)

	addPlaybookFlag(validatePlaybookCmd)
	rootCmd.AddCommand(validatePlaybookCmd)
}
