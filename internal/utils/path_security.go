package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafePath marks a name that cannot be stored as a single file in a directory.
var ErrUnsafePath = errors.New("unsafe path")

// FlatFilePath returns the absolute path of name directly inside dir.
// name must be one path element, and an existing entry with that name must
// not be a symlink.
func FlatFilePath(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}

	dirAbs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	target := filepath.Join(dirAbs, name)
	if filepath.Dir(target) != dirAbs {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}

	if err := EnsurePathNotSymlink(target); err != nil {
		return "", err
	}
	return target, nil
}

// EnsurePathNotSymlink reports an error when path itself is a symlink.
// A path that does not exist yet is accepted.
func EnsurePathNotSymlink(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("%w: symlink %s", ErrUnsafePath, path)
	}
	return nil
}
