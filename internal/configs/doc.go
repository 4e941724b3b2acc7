// Package configs loads and saves the optional envcrypt config file.
//
// Configuration is stored in TOML format in the directory holding the env
// files:
//
//	.envcrypt.toml
//
//	cipher = "aes-256-cbc"
//	env = "production"
//	audit_log = ".envcrypt/audit.jsonl"
//
// Every field is optional. A missing file is equivalent to an empty one, and
// unknown keys are rejected so that typos do not silently fall back to
// defaults.
//
// The loaded Config is passed explicitly to the workflows; there is no
// package-level configuration state.
package configs
