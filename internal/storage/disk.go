package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const dirPermissions = 0o755

// diskStore keeps blobs as flat files under a root directory
type diskStore struct {
	root string
}

// NewDiskStore creates a disk-backed store rooted at dir, creating it if
// needed.
func NewDiskStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &diskStore{root: dir}, nil
}

// path maps a file ID to its on-disk location, refusing IDs that would
// escape the root.
func (d *diskStore) path(fileID string) (string, error) {
	if fileID == "" || fileID != filepath.Base(fileID) || strings.ContainsAny(fileID, `/\`) {
		return "", ErrFileNotFound
	}
	return filepath.Join(d.root, fileID), nil
}

func (d *diskStore) Save(_ context.Context, ext string, r io.Reader) (string, error) {
	fileID := uuid.NewString() + ext

	path, err := d.path(fileID)
	if err != nil {
		return "", fmt.Errorf("generated invalid file ID %q", fileID)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return fileID, nil
}

func (d *diskStore) Open(_ context.Context, fileID string) (io.ReadCloser, error) {
	path, err := d.path(fileID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (d *diskStore) Delete(_ context.Context, fileID string) error {
	path, err := d.path(fileID)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
