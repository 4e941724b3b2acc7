// Package utils provides shared helpers for envcrypt commands.
//
// # Filesystem Utilities
//
//   - FileExists: reports whether a file is present
//
// # I/O Utilities
//
// Functions for reading key material from standard input:
//   - ReadStdin: reads piped data from standard input
//   - ReadKeyFrom: reads a key from any reader, trimming one trailing newline
//
// # Terminal Utilities
//
// Functions for terminal detection and interaction:
//   - ReadPassphrase: prompts for a key without echo
//   - IsTerminal: checks if stdin is a terminal
package utils
