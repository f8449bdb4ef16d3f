package cmd

import (
	"github.com/doitcli/doit/internal/core"
	"github.com/spf13/cobra"
)

// The vault subcommands map one to one onto ansible-vault actions. All of
// them prompt for passwords on the attached terminal, so there is nothing
// to capture or confirm here.

var encryptVaultCmd = &cobra.Command{
	Use:     "encrypt_vault",
	Aliases: []string{"encrypt-vault"},
	Short:   "Encrypt a vault file (ansible-vault encrypt)",
	Long: `Encrypt a file in place with ansible-vault. The tool prompts for a new
vault password; doit never sees it.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		ansible, vaultFilePath, err := vaultTarget(cmd)
		if err != nil {
			return err
		}
		return ansible.EncryptVault(vaultFilePath)
	}),
}

var editVaultCmd = &cobra.Command{
	Use:     "edit_vault",
	Aliases: []string{"edit-vault"},
	Short:   "Edit a vault file (ansible-vault edit)",
	Args:    cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		ansible, vaultFilePath, err := vaultTarget(cmd)
		if err != nil {
			return err
		}
		return ansible.EditVault(vaultFilePath)
	}),
}

var viewVaultCmd = &cobra.Command{
	Use:     "view_vault",
	Aliases: []string{"view-vault"},
	Short:   "View a vault file (ansible-vault view)",
	Args:    cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		ansible, vaultFilePath, err := vaultTarget(cmd)
		if err != nil {
			return err
		}
		return ansible.ViewVault(vaultFilePath)
	}),
}

var rekeyVaultCmd = &cobra.Command{
	Use:     "rekey_vault",
	Aliases: []string{"rekey-vault"},
	Short:   "Re-key a vault file (ansible-vault rekey)",
	Long: `Re-encrypt a vault file under a new password. ansible-vault prompts for
the current password and then for the new one.`,
	Args: cobra.NoArgs,
	RunE: runE(func(cmd *cobra.Command, _ []string) error {
		ansible, vaultFilePath, err := vaultTarget(cmd)
		if err != nil {
			return err
		}
		return ansible.RekeyVault(vaultFilePath)
	}),
}

// vaultTarget builds the ansible service plus the file the vault subcommand
// operates on.
func vaultTarget(cmd *cobra.Command) (*core.Ansible, string, error) {
	ansible, err := newAnsible(cmd)
	if err != nil {
		return nil, "", err
	}
	vaultFilePath, _ := cmd.Flags().GetString("vault-file-path") //nolint:errcheck // Flag is defined, error impossible
	return ansible, vaultFilePath, nil
}

func init() {
	for _, cmd := range []*cobra.Command{encryptVaultCmd, editVaultCmd, viewVaultCmd, rekeyVaultCmd} {
		addVaultFileFlag(cmd)
		rootCmd.AddCommand(cmd)
	}
}
