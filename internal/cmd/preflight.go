package cmd

import (
	"fmt"
	"os"

	"github.com/doitcli/doit/internal/core"
	"github.com/spf13/cobra"
)

var preflightCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Check that vagrant, ansible-lint and ansible-vault are available",
	Long: `Probe each wrapped tool and report the version it advertises. Catches a
missing tool up front instead of halfway through a setup.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		tools := []string{
			resolveToolPath(cmd, "vagrant-path", cfg.Tools.Vagrant),
			resolveToolPath(cmd, "ansible-lint-path", cfg.Tools.AnsibleLint),
			resolveToolPath(cmd, "ansible-vault-path", cfg.Tools.AnsibleVault),
		}

		ok := true
		for _, tool := range tools {
			version, err := core.CheckTool(tool)
			if err != nil {
				fmt.Fprintf(os.Stderr, "[preflight] %s: %v\n", tool, err)
				ok = false
				continue
			}
			fmt.Printf("[preflight] %s: OK (%s)\n", tool, version)
		}

		if !ok {
			return fmt.Errorf("preflight checks failed")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(preflightCmd)
}
