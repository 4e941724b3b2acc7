package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/envcrypt/internal/configs"
	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
	"github.com/PolarWolf314/envcrypt/internal/ui"
	"github.com/PolarWolf314/envcrypt/internal/utils"
	"github.com/PolarWolf314/envcrypt/internal/workflows"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// transformFlags holds the flags shared by encrypt and decrypt.
type transformFlags struct {
	env       string
	key       string
	keyStdin  bool
	promptKey bool
	cipher    string
	force     bool
	dir       string
	dryRun    bool
}

func registerTransformFlags(cmd *cobra.Command, f *transformFlags) {
	cmd.Flags().StringVarP(&f.env, "env", "e", "", "environment name, selects .env.<env> (default .env)")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "key as base64:<data> or a raw string")
	cmd.Flags().BoolVar(&f.keyStdin, "key-stdin", false, "read the key from stdin")
	cmd.Flags().BoolVar(&f.promptKey, "prompt-key", false, "prompt for the key without echo")
	cmd.Flags().StringVarP(&f.cipher, "cipher", "c", "", "cipher identifier (default from .envcrypt.toml or aes-256-cbc)")
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "overwrite the output file if it exists")
	cmd.Flags().StringVar(&f.dir, "dir", ".", "directory containing the env files")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "check everything without writing the output file")
	cmd.MarkFlagsMutuallyExclusive("key", "key-stdin", "prompt-key")
}

// buildOptions layers command-line flags over the directory's config file.
// The key is read here, before any spinner starts, so prompts stay visible.
func buildOptions(cmd *cobra.Command, f *transformFlags) (workflows.Options, error) {
	Logger.Debugf("Loading config from %s", configs.Path(f.dir))
	config, err := configs.Load(f.dir)
	if err != nil {
		return workflows.Options{}, err
	}

	opts := workflows.Options{
		Dir:      f.dir,
		Env:      config.Env,
		Cipher:   config.Cipher,
		Force:    f.force,
		DryRun:   f.dryRun,
		AuditLog: config.AuditLogPath(f.dir),
	}
	if cmd.Flags().Changed("env") {
		opts.Env = f.env
	}
	if cmd.Flags().Changed("cipher") {
		opts.Cipher = f.cipher
	}
	Logger.Debugf("Options: dir=%s, env=%q, cipher=%s, force=%t, dry-run=%t", opts.Dir, opts.Env, opts.Cipher, opts.Force, opts.DryRun)

	key, err := readKey(f)
	if err != nil {
		return workflows.Options{}, err
	}
	opts.Key = key

	return opts, nil
}

func readKey(f *transformFlags) (string, error) {
	switch {
	case f.keyStdin:
		Logger.Debugf("Reading key from stdin")
		data, err := utils.ReadStdin()
		if err != nil {
			return "", err
		}
		return string(data), nil
	case f.promptKey:
		Logger.Debugf("Prompting for key")
		data, err := utils.ReadPassphrase("Key: ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return f.key, nil
	}
}

// failureMessage renders err as a final spinner message with a hint where one helps.
func failureMessage(err error) string {
	var hint string
	switch {
	case errors.Is(err, kerrors.ErrMissingKey):
		hint = "Pass the key with " + ui.Flag.Sprint("--key") + ", " + ui.Flag.Sprint("--key-stdin") + " or " + ui.Flag.Sprint("--prompt-key")
	case errors.Is(err, kerrors.ErrFileExists):
		hint = "Use " + ui.Flag.Sprint("--force") + " to overwrite it"
	case errors.Is(err, kerrors.ErrMalformedRecord):
		hint = "The encrypted file is not an " + ui.Code.Sprint("<iv_hex>:<ciphertext_hex>") + " record"
	case errors.Is(err, kerrors.ErrDecryptFailed):
		hint = "Is the key correct, and was the file encrypted with the same " + ui.Flag.Sprint("--cipher") + "?"
	case errors.Is(err, kerrors.ErrCipherInit):
		hint = "The key length does not match the cipher"
	case errors.Is(err, kerrors.ErrUnknownCipher):
		hint = "Choose a cipher with " + ui.Flag.Sprint("--cipher")
	case errors.Is(err, kerrors.ErrUnknownOperation):
		hint = "Valid operations are " + ui.Code.Sprint("encrypt") + " and " + ui.Code.Sprint("decrypt")
	case errors.Is(err, kerrors.ErrInvalidConfig):
		hint = "Fix or remove " + ui.Path.Sprint(configs.FileName)
	}

	msg := ui.Error.Sprint(ui.CrossMark) + " " + ui.Error.Sprint("Error: ") + err.Error()
	if hint != "" {
		msg += "\n" + ui.Info.Sprint(ui.Arrow) + " " + hint
	}
	return msg
}

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
