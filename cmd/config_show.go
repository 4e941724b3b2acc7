package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/envcrypt/internal/configs"
	"github.com/PolarWolf314/envcrypt/internal/secrets"
	"github.com/PolarWolf314/envcrypt/internal/ui"
	"github.com/PolarWolf314/envcrypt/internal/utils"

	"github.com/spf13/cobra"
)

var (
	configShowJSON bool
	configShowDir  string
)

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	configShowCmd.Flags().StringVar(&configShowDir, "dir", ".", "directory containing .envcrypt.toml")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the configuration encrypt and decrypt would use in the directory.

When no .envcrypt.toml exists, the built-in defaults are shown.

Examples:
  envcrypt config show
  envcrypt config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		configPath := configs.Path(configShowDir)
		config, err := configs.Load(configShowDir)
		if err != nil {
			Logger.Errorf("Failed to load config: %v", err)
			fmt.Print(ui.EnsureNewline(failureMessage(err)))
			return reported(err)
		}

		if configShowJSON {
			output := map[string]interface{}{
				"path":      configPath,
				"exists":    utils.FileExists(configPath),
				"cipher":    config.Cipher,
				"env":       config.Env,
				"env_file":  secrets.EnvFileName(config.Env),
				"audit_log": config.AuditLog,
			}
			data, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if utils.FileExists(configPath) {
			fmt.Println("Configuration from " + ui.Path.Sprint(configPath) + ":")
		} else {
			fmt.Println("No " + ui.Path.Sprint(configs.FileName) + " found, using defaults:")
		}

		auditLog := config.AuditLog
		if auditLog == "" {
			auditLog = "disabled"
		}

		fmt.Printf("  Cipher:    %s\n", config.Cipher)
		fmt.Printf("  Env file:  %s\n", secrets.EnvFileName(config.Env))
		fmt.Printf("  Audit log: %s\n", auditLog)
		fmt.Printf("  Ciphers:   %s\n", strings.Join(secrets.SupportedCiphers(), ", "))
		return nil
	},
}
