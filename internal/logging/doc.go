// Package logger provides leveled console logging for envcrypt commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed and colored with fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details and errors
//
// Without flags, only WarnfAlways output is shown; user-facing results are
// printed by the commands themselves.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown (critical warnings)
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// Commands create a logger in the root command's PersistentPreRun.
// The secrets package never logs.
package logger
