package cmd

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/envcrypt/internal/audit"
	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
	"github.com/PolarWolf314/envcrypt/internal/workflows"
)

func TestLogCommand_Disabled(t *testing.T) {
	dir := t.TempDir()

	output, err := runCLI(t, "log", "--dir", dir)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(output, "disabled") {
		t.Errorf("Expected disabled notice, got: %s", output)
	}
}

func TestLogCommand_ShowsOperations(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, ".envcrypt.toml", "audit_log = \"audit.jsonl\"\n")
	encryptFixture(t, dir, "A=1")

	if _, err := runCLI(t, "decrypt", "--dir", dir, "--key", testKey); err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	output, err := runCLI(t, "log", "--dir", dir)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(output, "encrypt") || !strings.Contains(output, "decrypt") {
		t.Errorf("Expected both operations, got: %s", output)
	}
}

func TestLogCommand_JSONWithFilter(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, ".envcrypt.toml", "audit_log = \"audit.jsonl\"\n")
	logPath := filepath.Join(dir, "audit.jsonl")
	audit.Log(logPath, audit.Entry{Operation: "encrypt", Cipher: "aes-256-cbc"})
	audit.Log(logPath, audit.Entry{Operation: "decrypt", Cipher: "aes-256-cbc"})
	audit.Log(logPath, audit.Entry{Operation: "encrypt", Cipher: "bf-cbc", Env: "staging"})

	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	output, err := captureOutput(func() error {
		RootCmd.SetArgs([]string{"log", "--dir", dir, "--operation", "encrypt", "--json"})
		return RootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	var entries []audit.Entry
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, output)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 encrypt entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Operation != "encrypt" {
			t.Errorf("Unexpected operation %q", e.Operation)
		}
	}
}

func TestLogCommand_UnknownOperation(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, ".envcrypt.toml", "audit_log = \"audit.jsonl\"\n")

	_, err := runCLI(t, "log", "--dir", dir, "--operation", "rotate")
	if !errors.Is(err, kerrors.ErrUnknownOperation) {
		t.Errorf("Expected ErrUnknownOperation, got %v", err)
	}
}

func TestFilterEntries(t *testing.T) {
	entries := []audit.Entry{
		{ID: "1", Operation: "encrypt"},
		{ID: "2", Operation: "decrypt"},
		{ID: "3", Operation: "encrypt"},
		{ID: "4", Operation: "encrypt"},
	}

	tests := []struct {
		name    string
		op      workflows.Operation
		limit   int
		reverse bool
		want    []string
	}{
		{"all", 0, 0, false, []string{"1", "2", "3", "4"}},
		{"encrypt only", workflows.OperationEncrypt, 0, false, []string{"1", "3", "4"}},
		{"limit keeps most recent", 0, 2, false, []string{"3", "4"}},
		{"reverse", workflows.OperationDecrypt, 0, true, []string{"2"}},
		{"limit then reverse", workflows.OperationEncrypt, 2, true, []string{"4", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]audit.Entry(nil), entries...)
			got := filterEntries(input, tt.op, tt.limit, tt.reverse)

			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if strings.Join(ids, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Expected %v, got %v", tt.want, ids)
			}
		})
	}
}
