package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"bookstore/internal/usecase"
)

var _ usecase.CoverStorage = (*Store)(nil)

// Store keeps cover assets as plain files under a root directory. Paths
// returned by Store are the paths persisted on book records. Writing the same
// filename twice overwrites in place, so writes are idempotent on the
// resulting path.
type Store struct {
	root string
}

// New creates the root directory if needed.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{root: root}, nil
}

// Store writes the asset and returns its path. The filename is reduced to its
// base so a crafted name cannot escape the root.
func (s *Store) Store(_ context.Context, filename string, r io.Reader) (string, error) {
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid cover filename: %q", filename)
	}

	path := filepath.Join(s.root, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create cover file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write cover file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close cover file: %w", err)
	}

	return path, nil
}

// Remove deletes the asset at path. A missing file is a no-op.
func (s *Store) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to remove cover file: %w", err)
	}
	return nil
}
