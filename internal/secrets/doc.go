// Package secrets provides the cryptographic core of envcrypt.
//
// # Key Material
//
// A key argument is resolved into a binary secret:
//
//   - empty: a random secret of the cipher's key size is generated
//   - "base64:<data>": the remainder is base64-decoded
//   - anything else: the raw bytes of the string are used
//
// A generated secret is returned to the caller encoded as "base64:..." since
// it is never stored anywhere. Decryption refuses to run without a key.
//
// # Ciphertext Records
//
// Encrypted files hold a single text record:
//
//	<iv_hex>:<ciphertext_hex>
//
// The IV is drawn from crypto/rand for every encryption and stored in the
// clear next to the ciphertext. The plaintext is PKCS#7 padded and encrypted
// in CBC mode. Records are compatible with files produced by the Node.js
// env-encryption tool for the aes-*-cbc identifiers.
//
// # Security Considerations
//
// CBC provides confidentiality only. There is no MAC, so tampering is not
// detected and a wrong key is only noticed when padding validation happens
// to fail.
//
// # Env Files
//
// Environment files are resolved by name:
//   - ".env" for the default environment
//   - ".env.<name>" for a named environment
//
// and encrypted to "<file>.encrypted".
package secrets
