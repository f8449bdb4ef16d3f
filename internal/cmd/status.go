package cmd

import "github.com/spf13/cobra"

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the virtual machine status (vagrant status)",
	Long: `Report the state of the virtual machine defined by the Vagrantfile.
Purely informational: nothing is validated and nothing is changed.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		vagrant, err := newVagrant(cmd)
		if err != nil {
			return err
		}
		return vagrant.Status()
	}),
}

func init() {
	addVagrantfileFlag(statusCmd)
	rootCmd.AddCommand(statusCmd)
}
