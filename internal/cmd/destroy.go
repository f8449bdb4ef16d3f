package cmd

import "github.com/spf13/cobra"

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Destroy the virtual machine (vagrant destroy)",
	Long: `Tear down the virtual machine. vagrant asks for confirmation on the
attached terminal; answering there is the only prompt involved.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		vagrant, err := newVagrant(cmd)
		if err != nil {
			return err
		}
		return vagrant.Destroy()
	}),
}

func init() {
	addVagrantfileFlag(destroyCmd)
	rootCmd.AddCommand(destroyCmd)
}
