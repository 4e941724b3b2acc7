package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`     // Random UUID per entry.
	Timestamp string `json:"ts"`     // RFC3339 with microseconds.
	Operation string `json:"op"`     // "encrypt" or "decrypt".
	Env       string `json:"env"`    // Environment name, empty for the default.
	Cipher    string `json:"cipher"` // Cipher identifier.
	Source    string `json:"source"` // File that was read.
	Output    string `json:"output"` // File that was written.

	// Set when encrypt generated a new key. The key itself is never logged.
	KeyGenerated bool `json:"key_generated,omitempty"`
}

// Log appends an entry to the audit log at logPath.
// An empty logPath disables auditing. Failures are ignored: operations
// should not fail just because audit logging failed.
func Log(logPath string, entry Entry) {
	if logPath == "" {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return
	}

	// #nosec G306 -- audit log should be readable by team members.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(logPath string) ([]Entry, error) {
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
