// Package workflows provides high-level orchestration for envcrypt commands.
//
// Workflows sequence the secrets package (key resolution, the cipher codec
// and env file access) and the audit log into complete operations,
// independent of CLI concerns like flag parsing, spinners, and output
// formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and loads the config file
//   - Calls Run with the command's Operation
//   - Formats the Result for display
//
// # Operations
//
// Operation is a closed set dispatched by Run:
//
//   - OperationEncrypt: .env[.<env>] -> .env[.<env>].encrypted
//   - OperationDecrypt: .env[.<env>].encrypted -> .env[.<env>] (or Options.Output)
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Run(ctx, workflows.OperationDecrypt, opts)
//	if errors.Is(err, kerrors.ErrMissingKey) {
//	    // Ask for --key
//	}
//
// # Context Usage
//
// Workflow functions accept a context.Context as their first parameter.
// It is checked once, right before the output file is written.
package workflows
