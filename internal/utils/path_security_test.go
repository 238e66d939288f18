package utils

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFlatFilePath_AllowsPlainName(t *testing.T) {
	dir := t.TempDir()

	got, err := FlatFilePath(dir, "pizza.png")
	if err != nil {
		t.Fatalf("FlatFilePath returned error: %v", err)
	}

	dirAbs, _ := filepath.Abs(dir)
	if got != filepath.Join(dirAbs, "pizza.png") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestFlatFilePath_RejectsNonFlatNames(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"", ".", "..", "../escape.png", "a/b.png", `a\b.png`, filepath.Join(dir, "x.png")} {
		if _, err := FlatFilePath(dir, name); !errors.Is(err, ErrUnsafePath) {
			t.Fatalf("expected ErrUnsafePath for %q, got %v", name, err)
		}
	}
}

func TestFlatFilePath_RejectsSymlinkedEntry(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	outside := filepath.Join(t.TempDir(), "secret.txt")
	if err := os.WriteFile(outside, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(dir, "link.png")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if _, err := FlatFilePath(dir, "link.png"); !errors.Is(err, ErrUnsafePath) {
		t.Fatalf("expected ErrUnsafePath for symlinked entry, got %v", err)
	}
}

func TestEnsurePathNotSymlink_NonExistentOK(t *testing.T) {
	p := filepath.Join(t.TempDir(), "does-not-exist")
	if err := EnsurePathNotSymlink(p); err != nil {
		t.Fatalf("expected nil for non-existent path, got: %v", err)
	}
}
