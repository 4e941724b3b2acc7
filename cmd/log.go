package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/PolarWolf314/envcrypt/internal/audit"
	"github.com/PolarWolf314/envcrypt/internal/configs"
	"github.com/PolarWolf314/envcrypt/internal/ui"
	"github.com/PolarWolf314/envcrypt/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logJSON      bool
	logDir       string
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation (encrypt or decrypt)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
	logCmd.Flags().StringVar(&logDir, "dir", ".", "directory containing .envcrypt.toml")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log configured by audit_log in .envcrypt.toml.

Keys are never written to the log.

Examples:
  envcrypt log                       # View full log
  envcrypt log -n 10                 # Last 10 entries
  envcrypt log --reverse             # Most recent first
  envcrypt log --operation decrypt   # Filter by operation
  envcrypt log --json                # JSON output`,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	config, err := configs.Load(logDir)
	if err != nil {
		fmt.Print(ui.EnsureNewline(failureMessage(err)))
		return reported(err)
	}

	logPath := config.AuditLogPath(logDir)
	if logPath == "" {
		fmt.Println(ui.Info.Sprint(ui.Arrow) + " Audit logging is disabled. Set " + ui.Code.Sprint("audit_log") +
			" in " + ui.Path.Sprint(configs.FileName) + " to enable it.")
		return nil
	}

	var op workflows.Operation
	if logOperation != "" {
		op, err = workflows.ParseOperation(logOperation)
		if err != nil {
			fmt.Print(ui.EnsureNewline(failureMessage(err)))
			return reported(err)
		}
	}

	Logger.Debugf("Reading audit log from %s", logPath)
	entries, err := audit.ReadEntries(logPath)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to read audit log: %w", err)
	}
	total := len(entries)

	entries = filterEntries(entries, op, logLimit, logReverse)
	Logger.Debugf("Showing %d of %d entries", len(entries), total)

	if len(entries) == 0 {
		if total == 0 {
			fmt.Println("No audit log entries found.")
		} else {
			fmt.Println("No audit log entries found matching the filters.")
		}
		return nil
	}

	if logJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, e := range entries {
		env := "default"
		if e.Env != "" {
			env = ui.Highlight.Sprint(e.Env)
		}
		line := fmt.Sprintf("%-19s  %-8s  %-12s  %s", formatTimestamp(e.Timestamp), e.Operation, e.Cipher, env)
		if e.KeyGenerated {
			line += " " + ui.Muted.Sprint("new key")
		}
		fmt.Println(line)
	}
	return nil
}

// filterEntries keeps entries matching op (zero matches all), then applies
// the limit to the most recent entries and the requested order.
func filterEntries(entries []audit.Entry, op workflows.Operation, limit int, reverse bool) []audit.Entry {
	var filtered []audit.Entry
	for _, e := range entries {
		if op != 0 && e.Operation != op.String() {
			continue
		}
		filtered = append(filtered, e)
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	if reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}
	return filtered
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
