package cmd

import (
	"fmt"

	"github.com/PolarWolf314/envcrypt/internal/ui"
	"github.com/PolarWolf314/envcrypt/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	decryptFlags    transformFlags
	decryptFilename string
)

func init() {
	registerTransformFlags(decryptCmd, &decryptFlags)
	decryptCmd.Flags().StringVar(&decryptFilename, "filename", "", "write the decrypted file here instead of .env[.<env>]")
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypts .env[.<env>].encrypted back into .env[.<env>]",
	Long: `Decrypts <file>.encrypted back into the environment file using the given key.

The cipher must match the one used to encrypt the file. An existing
output file is only replaced with --force.

Examples:
  # Decrypt .env.encrypted into .env
  envcrypt decrypt --key base64:...

  # Decrypt .env.staging.encrypted into a custom file
  envcrypt decrypt --env staging --key base64:... --filename .env.local

  # Check the key without writing anything
  envcrypt decrypt --prompt-key --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		opts, err := buildOptions(cmd, &decryptFlags)
		if err != nil {
			Logger.Errorf("Failed to resolve options: %v", err)
			fmt.Print(ui.EnsureNewline(failureMessage(err)))
			return reported(err)
		}
		opts.Output = decryptFilename

		spinner, cleanup := startSpinner("Decrypting environment file...", verbose)
		defer cleanup()

		result, err := workflows.Run(cmd.Context(), workflows.OperationDecrypt, opts)
		if err != nil {
			Logger.Errorf("Decrypt failed: %v", err)
			spinner.FinalMSG = failureMessage(err)
			return reported(err)
		}

		if result.DryRun {
			Logger.Infof("Dry run complete, nothing written")
			msg := ui.Warning.Sprint("[dry-run]") + " Key verified. Would decrypt " + ui.Path.Sprint(result.SourceFile) +
				" to " + ui.Path.Sprint(result.OutputFile)
			if result.OutputExists {
				msg += "\n" + ui.Info.Sprint(ui.Arrow) + " " + ui.Path.Sprint(result.OutputFile) + " would be overwritten"
			}
			spinner.FinalMSG = msg
			return nil
		}

		Logger.Infof("Decrypted %s to %s", result.SourceFile, result.OutputFile)
		finalMessage := ui.Success.Sprint(ui.CheckMark) + " Decrypted " + ui.Path.Sprint(result.SourceFile) +
			" to " + ui.Path.Sprint(result.OutputFile) + " " + ui.Muted.Sprint(result.Cipher)
		if result.OutputExists {
			finalMessage += "\n" + ui.Info.Sprint(ui.Arrow) + " Overwrote the existing " + ui.Path.Sprint(result.OutputFile)
		}
		finalMessage += "\n" + ui.Warning.Sprint("Warning: ") + ui.Path.Sprint(result.OutputFile) + " contains plaintext secrets. Do not commit it."

		spinner.FinalMSG = finalMessage
		return nil
	},
}
