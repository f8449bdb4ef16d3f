package cmd

import "github.com/spf13/cobra"

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up and provision the virtual machine (vagrant up)",
	Long: `Create and provision the virtual machine with vagrant, using the Ansible
provisioner configured in the Vagrantfile.

The Vagrantfile and the playbook are validated first; vagrant up only runs
once both pass.

Examples:
  doit setup                          # Vagrantfile in the current directory
  doit setup -f infra -p site.yml     # explicit locations`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		lab, playbookPath, err := newLab(cmd)
		if err != nil {
			return err
		}
		return lab.Setup(playbookPath)
	}),
}

func init() {
	addVagrantfileFlag(setupCmd)
	addPlaybookFlag(setupCmd)
	rootCmd.AddCommand(setupCmd)
}
