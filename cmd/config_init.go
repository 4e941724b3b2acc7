package cmd

import (
	"fmt"

	"github.com/PolarWolf314/envcrypt/internal/configs"
	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
	"github.com/PolarWolf314/envcrypt/internal/ui"
	"github.com/PolarWolf314/envcrypt/internal/utils"

	"github.com/spf13/cobra"
)

var (
	configInitCipher   string
	configInitEnv      string
	configInitAuditLog string
	configInitForce    bool
	configInitDir      string
)

func init() {
	configInitCmd.Flags().StringVarP(&configInitCipher, "cipher", "c", "", "default cipher (default aes-256-cbc)")
	configInitCmd.Flags().StringVarP(&configInitEnv, "env", "e", "", "default environment name")
	configInitCmd.Flags().StringVar(&configInitAuditLog, "audit-log", "", "audit log path, relative to the directory")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing .envcrypt.toml")
	configInitCmd.Flags().StringVar(&configInitDir, "dir", ".", "directory to create .envcrypt.toml in")
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates .envcrypt.toml",
	Long: `Creates a .envcrypt.toml file holding defaults for encrypt and decrypt.

Examples:
  # Use the defaults
  envcrypt config init

  # Record every operation in .envcrypt/audit.jsonl
  envcrypt config init --audit-log .envcrypt/audit.jsonl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		configPath := configs.Path(configInitDir)
		if utils.FileExists(configPath) && !configInitForce {
			err := fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrFileExists, configPath)
			fmt.Print(ui.EnsureNewline(failureMessage(err)))
			return reported(err)
		}

		if utils.FileExists(configPath) {
			Logger.WarnfAlways("Overwriting %s", configPath)
		}

		config := configs.Default()
		if configInitCipher != "" {
			config.Cipher = configInitCipher
		}
		config.Env = configInitEnv
		config.AuditLog = configInitAuditLog
		Logger.Debugf("Config: cipher=%s, env=%q, audit_log=%q", config.Cipher, config.Env, config.AuditLog)

		if err := configs.Save(configInitDir, config); err != nil {
			Logger.Errorf("Failed to save config: %v", err)
			fmt.Print(ui.EnsureNewline(failureMessage(err)))
			return reported(err)
		}

		Logger.Infof("Wrote %s", configPath)
		fmt.Println(ui.Success.Sprint(ui.CheckMark) + " Created " + ui.Path.Sprint(configPath))
		fmt.Println(ui.Info.Sprint(ui.Arrow) + " Run " + ui.Code.Sprint("envcrypt encrypt") + " to encrypt your environment file")
		return nil
	},
}
