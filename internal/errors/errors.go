package errors

import "errors"

// Key errors indicate missing or unusable key material.
var (
	// ErrMissingKey indicates decryption was attempted without a key.
	ErrMissingKey = errors.New("key is required")

	// ErrInvalidKeyEncoding indicates a base64: key could not be decoded.
	ErrInvalidKeyEncoding = errors.New("invalid base64 key encoding")
)

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrUnknownCipher indicates the cipher identifier is not supported.
	ErrUnknownCipher = errors.New("unsupported cipher")

	// ErrCipherInit indicates the key length does not match the selected cipher.
	ErrCipherInit = errors.New("failed to initialize cipher")

	// ErrMalformedRecord indicates the ciphertext record is not <iv_hex>:<ciphertext_hex>.
	ErrMalformedRecord = errors.New("malformed ciphertext record")

	// ErrEncryptFailed indicates file encryption failed.
	ErrEncryptFailed = errors.New("failed to encrypt file")

	// ErrDecryptFailed indicates the ciphertext is corrupt or the key is wrong.
	ErrDecryptFailed = errors.New("failed to decrypt file")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileExists indicates the output file exists and overwriting was not requested.
	ErrFileExists = errors.New("file already exists")
)

// Command errors indicate invalid invocation or configuration.
var (
	// ErrUnknownOperation indicates the requested operation is neither encrypt nor decrypt.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")
)
