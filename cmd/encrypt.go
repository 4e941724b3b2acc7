package cmd

import (
	"fmt"

	"github.com/PolarWolf314/envcrypt/internal/ui"
	"github.com/PolarWolf314/envcrypt/internal/workflows"

	"github.com/spf13/cobra"
)

var encryptFlags transformFlags

func init() {
	registerTransformFlags(encryptCmd, &encryptFlags)
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypts .env[.<env>] into .env[.<env>].encrypted",
	Long: `Encrypts the environment file into <file>.encrypted using a CBC block cipher
with a fresh random IV.

If no key is given, a new key is generated and printed once. Store it
safely: it is the only way to decrypt the file.

Examples:
  # Encrypt .env with a newly generated key
  envcrypt encrypt

  # Encrypt .env.production with an existing key
  envcrypt encrypt --env production --key base64:...

  # Read the key from a secret manager
  vault read -field=key secret/app | envcrypt encrypt --key-stdin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		opts, err := buildOptions(cmd, &encryptFlags)
		if err != nil {
			Logger.Errorf("Failed to resolve options: %v", err)
			fmt.Print(ui.EnsureNewline(failureMessage(err)))
			return reported(err)
		}

		spinner, cleanup := startSpinner("Encrypting environment file...", verbose)
		defer cleanup()

		result, err := workflows.Run(cmd.Context(), workflows.OperationEncrypt, opts)
		if err != nil {
			Logger.Errorf("Encrypt failed: %v", err)
			spinner.FinalMSG = failureMessage(err)
			return reported(err)
		}

		if result.DryRun {
			Logger.Infof("Dry run complete, nothing written")
			spinner.FinalMSG = ui.Warning.Sprint("[dry-run]") + " Would encrypt " + ui.Path.Sprint(result.SourceFile) +
				" to " + ui.Path.Sprint(result.OutputFile) + " " + ui.Muted.Sprint(result.Cipher)
			return nil
		}

		Logger.Infof("Encrypted %s to %s", result.SourceFile, result.OutputFile)
		finalMessage := ui.Success.Sprint(ui.CheckMark) + " Encrypted " + ui.Path.Sprint(result.SourceFile) +
			" to " + ui.Path.Sprint(result.OutputFile) + " " + ui.Muted.Sprint(result.Cipher)

		if result.GeneratedKey != "" {
			finalMessage += "\n" + ui.Info.Sprint(ui.Arrow) + " Generated key: " + ui.Key.Sprint(result.GeneratedKey) +
				"\n" + ui.Warning.Sprint("Warning: ") + "Store this key safely. It is not saved anywhere and cannot be recovered."
		}
		finalMessage += "\n" + ui.Info.Sprint(ui.Arrow) + " You can now safely commit " + ui.Path.Sprint(result.OutputFile)

		spinner.FinalMSG = finalMessage
		return nil
	},
}
