package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"menu-server/internal/utils"
)

var (
	// ErrImageNotFound is returned by Open for names that do not resolve to a
	// regular file inside the store.
	ErrImageNotFound = errors.New("image not found")
	// ErrInvalidName is returned by Save for names that would leave the store.
	ErrInvalidName = errors.New("invalid image name")
)

// ImageStore keeps uploaded images addressable by a flat filename.
type ImageStore interface {
	Save(filename string, src io.Reader) error
	Open(filename string) (*os.File, fs.FileInfo, error)
}

// LocalImageStore stores images in a single directory on disk.
type LocalImageStore struct {
	root string
}

// NewLocalImageStore creates root if needed. Calling it again for the same
// directory is harmless.
func NewLocalImageStore(root string) (*LocalImageStore, error) {
	if err := utils.EnsurePathNotSymlink(root); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory %q: %w", root, err)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload directory: %w", err)
	}
	return &LocalImageStore{root: abs}, nil
}

// Root is the absolute directory holding the images.
func (s *LocalImageStore) Root() string {
	return s.root
}

// Save writes src to filename, replacing any file already stored under it.
func (s *LocalImageStore) Save(filename string, src io.Reader) error {
	dst, err := s.resolve(filename)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return out.Close()
}

// Open returns the stored file and its info. The caller closes the file.
func (s *LocalImageStore) Open(filename string) (*os.File, fs.FileInfo, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, nil, ErrImageNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrImageNotFound
		}
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, nil, ErrImageNotFound
	}
	return f, info, nil
}

// resolve maps a flat filename to its absolute path inside the store.
func (s *LocalImageStore) resolve(filename string) (string, error) {
	path, err := utils.FlatFilePath(s.root, filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return path, nil
}
