package cmd

import (
	"fmt"

	"github.com/doitcli/doit/internal/core"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter doit.yaml config file",
	Long: `Create a doit.yaml in the current directory recording where the
Vagrantfile and the playbook live and which tool binaries to use.

Flags and built-in defaults keep working without the file; it only pins
project-specific paths so they need not be repeated on every call.

Use --force to overwrite an existing doit.yaml.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force") //nolint:errcheck // Flag is defined, error impossible
		if err := core.InitConfig(core.DefaultConfigFile, force); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", core.DefaultConfigFile)
		return nil
	}),
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing doit.yaml")
	rootCmd.AddCommand(initCmd)
}
