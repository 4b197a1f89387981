package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOverwriteFileAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "result.txt")
	if err := os.WriteFile(testFile, []byte("stale result"), 0600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := OverwriteFileAtomic(testFile, []byte("Alice: 20")); err != nil {
		t.Fatalf("OverwriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "Alice: 20" {
		t.Errorf("File content mismatch: got %q, want %q", string(data), "Alice: 20")
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("File permissions changed: got %o, want %o", info.Mode().Perm(), 0600)
	}

	// No temp files left behind
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "result.txt" {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestOverwriteRequiresExistingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.txt")

	for name, write := range map[string]func(string, []byte) error{
		"atomic": OverwriteFileAtomic,
		"direct": OverwriteFile,
	} {
		err := write(missing, []byte("ERROR"))
		if !errors.Is(err, ErrMissingFile) {
			t.Errorf("%s: expected ErrMissingFile, got %v", name, err)
		}
		if _, statErr := os.Stat(missing); !errors.Is(statErr, os.ErrNotExist) {
			t.Errorf("%s: output file was created", name)
		}
	}
}

func TestOverwriteFileTruncates(t *testing.T) {
	t.Parallel()

	testFile := filepath.Join(t.TempDir(), "result.txt")
	if err := os.WriteFile(testFile, []byte("a much longer previous result"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := OverwriteFile(testFile, []byte("ERROR")); err != nil {
		t.Fatalf("OverwriteFile failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "ERROR" {
		t.Errorf("File content mismatch: got %q, want %q", string(data), "ERROR")
	}
}
