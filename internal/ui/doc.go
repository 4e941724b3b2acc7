// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations are used instead:
//
//	ui.Code.Sprint("envcrypt decrypt --key ...") // `envcrypt decrypt --key ...`
//	ui.Highlight.Sprint("production")            // 'production'
//	ui.Muted.Sprint("aes-256-cbc")               // (aes-256-cbc)
//	ui.Path.Sprint(".env.encrypted")             // .env.encrypted
//	ui.Key.Sprint("base64:...")                  // base64:...
package ui
