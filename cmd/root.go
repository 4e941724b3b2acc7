package cmd

import (
	"errors"
	"fmt"

	logger "github.com/PolarWolf314/envcrypt/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "envcrypt",
		Short: "Encrypt and decrypt .env files with a symmetric key",
		Long: `envcrypt encrypts environment files into <file>.encrypted so they can be
committed, and decrypts them back given the key.

Usage:
  envcrypt <command> [flags]

Available Commands:
  encrypt    Encrypt .env[.<env>] into .env[.<env>].encrypted
  decrypt    Decrypt .env[.<env>].encrypted back into .env[.<env>]
  config     Manage the .envcrypt.toml defaults file
  log        View the audit log

Run 'envcrypt help <command>' for more details on a specific command.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), figure.NewFigure("envcrypt", "small", true).String())
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'envcrypt --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(logCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// reportedError marks an error whose user-facing message was already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global flag variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}

	for _, c := range []*cobra.Command{RootCmd, encryptCmd, decryptCmd, configInitCmd, configShowCmd, logCmd} {
		resetFlags(c.Flags())
		resetFlags(c.PersistentFlags())
	}
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
