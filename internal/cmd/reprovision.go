package cmd

import "github.com/spf13/cobra"

var reprovisionCmd = &cobra.Command{
	Use:   "reprovision",
	Short: "Re-run the provisioners on the virtual machine (vagrant provision)",
	Long: `Re-apply the Ansible provisioning to the already running virtual machine.

As with setup, the Vagrantfile and the playbook are validated first and
vagrant provision only runs once both pass.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		lab, playbookPath, err := newLab(cmd)
		if err != nil {
			return err
		}
		return lab.Reprovision(playbookPath)
	}),
}

func init() {
	addVagrantfileFlag(reprovisionCmd)
	addPlaybookFlag(reprovisionCmd)
	rootCmd.AddCommand(reprovisionCmd)
}
