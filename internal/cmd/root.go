package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "doit",
	Short: "Vagrant and Ansible lab workflow CLI",
	Long: `A CLI tool wrapping the vagrant and ansible commands used to manage a
provisioned virtual machine: bring it up, enter it, validate its
definitions, and work with encrypted vault files.

Each subcommand runs exactly the underlying tool command it names, with
the terminal attached, so interactive prompts (vagrant ssh, ansible-vault
passwords) behave as if the tool had been called directly.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		configureLogging(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return fmt.Errorf("a subcommand is required")
	},
}

// Execute runs the root command and returns any error
func Execute() error {
	return rootCmd.Execute()
}

func configureLogging(cmd *cobra.Command) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	verbose, _ := cmd.Flags().GetBool("verbose") //nolint:errcheck // Flag is defined, error impossible
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to the config file (default: ./doit.yaml when present)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "print the external commands instead of running them")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("vagrant-path", "vagrant", "path to the vagrant binary")
	rootCmd.PersistentFlags().String("ansible-lint-path", "ansible-lint", "path to the ansible-lint binary")
	rootCmd.PersistentFlags().String("ansible-vault-path", "ansible-vault", "path to the ansible-vault binary")

	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)
}
