// Package audit records encrypt and decrypt operations as JSON Lines.
//
// Auditing is opt-in through the audit_log setting in .envcrypt.toml. Each
// line is one Entry:
//
//	{"id":"...","ts":"2026-01-02T03:04:05.000000Z","op":"encrypt","env":"production",...}
//
// Key material is never written to the log; only whether a key was generated.
package audit
