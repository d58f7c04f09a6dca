package osfilesystem

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()

	testPath := filepath.Join(t.TempDir(), "logo.png")
	testData := []byte("hello world")

	if err := fs.WriteFile(testPath, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestFileSystem_WriteFileOverwrites(t *testing.T) {
	fs := New()

	tmpDir := t.TempDir()
	testPath := filepath.Join(tmpDir, "logo.png")

	if err := fs.WriteFile(testPath, []byte("first version, longer")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.WriteFile(testPath, []byte("second")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, _ := os.ReadFile(testPath)
	if string(data) != "second" {
		t.Errorf("expected %q, got %q", "second", data)
	}

	// No temp files are left behind.
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
	info, _ := os.Stat(testPath)
	if info.Mode().Perm() != 0644 {
		t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()

	testPath := filepath.Join(t.TempDir(), "a", "b", "c", "logo.png")
	if err := fs.WriteFile(testPath, []byte("test")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := os.Stat(testPath); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestFileSystem_ReadMissing(t *testing.T) {
	fs := New()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing.jpg"))
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fs := New()

	testPath := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := fs.MkdirAll(testPath); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	info, err := os.Stat(testPath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}
}
