package cmd

import "github.com/spf13/cobra"

var enterCmd = &cobra.Command{
	Use:   "enter",
	Short: "Enter the provisioned virtual machine (vagrant ssh)",
	Long: `Open an interactive SSH session into the running virtual machine. The
session owns the terminal until it ends; its exit status becomes doit's.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		vagrant, err := newVagrant(cmd)
		if err != nil {
			return err
		}
		return vagrant.SSH()
	}),
}

func init() {
	addVagrantfileFlag(enterCmd)
	rootCmd.AddCommand(enterCmd)
}
