package cmd

import (
	"github.com/spf13/cobra"
)

// configCmd groups the commands that manage .envcrypt.toml.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the .envcrypt.toml defaults file",
	Long: `Provides commands for managing the per-directory .envcrypt.toml file.

The file sets defaults for encrypt and decrypt. Flags given on the
command line always take precedence.

Examples:
  # Create .envcrypt.toml with the default cipher
  envcrypt config init

  # Default to .env.production and blowfish
  envcrypt config init --env production --cipher bf-cbc

  # Show the effective configuration
  envcrypt config show`,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
