package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLog_CreatesFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, ".envcrypt", "audit.jsonl")

	Log(logPath, Entry{Operation: "encrypt", Source: ".env", Output: ".env.encrypted"})

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "audit.jsonl")

	Log(logPath, Entry{Operation: "encrypt"})
	Log(logPath, Entry{Operation: "decrypt"})
	Log(logPath, Entry{Operation: "encrypt", Env: "production"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
}

func TestLog_ValidJSON(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "audit.jsonl")

	Log(logPath, Entry{
		Operation:    "encrypt",
		Env:          "production",
		Cipher:       "aes-256-cbc",
		Source:       "/app/.env.production",
		Output:       "/app/.env.production.encrypted",
		KeyGenerated: true,
	})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Audit log line is not valid JSON: %v", err)
	}

	if parsed["op"] != "encrypt" {
		t.Errorf("Expected op=encrypt, got %v", parsed["op"])
	}
	if parsed["env"] != "production" {
		t.Errorf("Expected env=production, got %v", parsed["env"])
	}
	if parsed["key_generated"] != true {
		t.Errorf("Expected key_generated=true, got %v", parsed["key_generated"])
	}
	if id, _ := parsed["id"].(string); len(id) != 36 {
		t.Errorf("Expected a 36 character UUID, got %q", id)
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "audit.jsonl")

	Log(logPath, Entry{Operation: "decrypt"})

	entries, err := ReadEntries(logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	if _, err := time.Parse("2006-01-02T15:04:05.000000Z", entries[0].Timestamp); err != nil {
		t.Errorf("Timestamp %q has unexpected format: %v", entries[0].Timestamp, err)
	}
}

func TestLog_KeepsExplicitFields(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "audit.jsonl")

	Log(logPath, Entry{ID: "fixed-id", Timestamp: "2024-01-01T00:00:00.000000Z", Operation: "encrypt"})

	entries, err := ReadEntries(logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "fixed-id" || entries[0].Timestamp != "2024-01-01T00:00:00.000000Z" {
		t.Errorf("Explicit ID and timestamp were not preserved: %+v", entries)
	}
}

func TestLog_OmitsKeyGeneratedWhenFalse(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "audit.jsonl")

	Log(logPath, Entry{Operation: "decrypt"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	if strings.Contains(string(data), "key_generated") {
		t.Errorf("Expected key_generated to be omitted, got %s", data)
	}
}

func TestLog_EmptyPathDisabled(t *testing.T) {
	// Should not panic or create anything.
	Log("", Entry{Operation: "encrypt"})

	entries, err := ReadEntries("")
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestParseEntries_ValidData(t *testing.T) {
	data := []byte(`{"id":"1","ts":"2024-01-01T00:00:00.000000Z","op":"encrypt","env":"","cipher":"aes-256-cbc","source":".env","output":".env.encrypted"}
{"id":"2","ts":"2024-01-01T00:00:01.000000Z","op":"decrypt","env":"","cipher":"aes-256-cbc","source":".env.encrypted","output":".env"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Operation != "encrypt" || entries[1].Operation != "decrypt" {
		t.Errorf("Unexpected operations: %s, %s", entries[0].Operation, entries[1].Operation)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"op":"encrypt"}
not json
{"op":"decrypt"}`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}
