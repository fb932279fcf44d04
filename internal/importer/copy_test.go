// internal/importer/copy_test.go
package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	srcPath := filepath.Join(srcDir, "Seat_BaseColor.png")
	content := []byte("\x89PNG fake texture")
	if err := os.WriteFile(srcPath, content, 0644); err != nil {
		t.Fatalf("create source: %v", err)
	}

	dstPath := filepath.Join(dstDir, "Seat_BaseColor.png")
	size, err := CopyFile(srcPath, dstPath)
	if err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	if size != int64(len(content)) {
		t.Errorf("size = %d, want %d", size, len(content))
	}

	got, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(got) != string(content) {
		t.Error("content mismatch")
	}
}

func TestCopyFile_Overwrites(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	srcPath := filepath.Join(srcDir, "new.png")
	if err := os.WriteFile(srcPath, []byte("new"), 0644); err != nil {
		t.Fatalf("create source: %v", err)
	}
	dstPath := filepath.Join(dstDir, "old.png")
	if err := os.WriteFile(dstPath, []byte("old content"), 0644); err != nil {
		t.Fatalf("create dest: %v", err)
	}

	if _, err := CopyFile(srcPath, dstPath); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	got, _ := os.ReadFile(dstPath)
	if string(got) != "new" {
		t.Errorf("dest = %q, want %q", got, "new")
	}
}

func TestCopyFile_MissingDestinationFolder(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "a.png")
	if err := os.WriteFile(srcPath, []byte("x"), 0644); err != nil {
		t.Fatalf("create source: %v", err)
	}

	_, err := CopyFile(srcPath, filepath.Join(t.TempDir(), "missing", "a.png"))
	if !errors.Is(err, ErrCopyFailed) {
		t.Errorf("expected ErrCopyFailed, got %v", err)
	}
}

func TestCopyFile_SourceNotFound(t *testing.T) {
	_, err := CopyFile("/nonexistent/file.png", filepath.Join(t.TempDir(), "dest.png"))
	if !errors.Is(err, ErrCopyFailed) {
		t.Errorf("expected ErrCopyFailed, got %v", err)
	}
}
