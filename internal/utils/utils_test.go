package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".env")

	if FileExists(path) {
		t.Errorf("Expected %s to not exist", path)
	}

	if err := os.WriteFile(path, []byte("A=1"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if !FileExists(path) {
		t.Errorf("Expected %s to exist", path)
	}

	if FileExists(tmpDir) {
		t.Errorf("Expected a directory not to count as a file")
	}
}

func TestReadKeyFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"No newline", "base64:abc=", "base64:abc="},
		{"Trailing newline", "base64:abc=\n", "base64:abc="},
		{"CRLF", "secret\r\n", "secret"},
		{"Only one newline trimmed", "secret\n\n", "secret\n"},
		{"Inner spaces kept", " pass phrase ", " pass phrase "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadKeyFrom(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReadKeyFrom_Empty(t *testing.T) {
	for _, input := range []string{"", "\n"} {
		if _, err := ReadKeyFrom(strings.NewReader(input)); err == nil {
			t.Errorf("Expected an error for input %q", input)
		}
	}
}
