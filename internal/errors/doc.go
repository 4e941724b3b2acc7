// Package errors provides typed error values for envcrypt.
//
// Sentinel errors let callers handle specific conditions with errors.Is()
// rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: missing or undecodable key material (ErrMissingKey, ErrInvalidKeyEncoding)
//   - Crypto errors: cipher setup and record handling (ErrCipherInit, ErrMalformedRecord, ErrDecryptFailed)
//   - File errors: env file access (ErrFileNotFound, ErrFileExists)
//   - Command errors: invocation and configuration (ErrUnknownOperation, ErrInvalidConfig)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return nil, fmt.Errorf("%w: key is %d bytes, %s needs %d", errors.ErrCipherInit, len(key), c.Name, c.KeySize)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrMissingKey) {
//	    // Tell the user to pass --key
//	}
package errors
