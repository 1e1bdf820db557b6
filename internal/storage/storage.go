package storage

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound is returned when the named file does not exist
var ErrFileNotFound = errors.New("file not found")

// ImageExtensions maps accepted image content types to their stored
// extension. Uploads with any other content type are rejected before the
// bytes are written.
var ImageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store persists opaque file blobs keyed by a store-generated file ID.
// Implementations own ID generation so callers cannot influence paths.
type Store interface {
	// Save writes the blob and returns its file ID. ext is the file
	// extension including the dot, e.g. ".jpg".
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
	// Open returns a reader for the blob. The caller closes it.
	Open(ctx context.Context, fileID string) (io.ReadCloser, error)
	Delete(ctx context.Context, fileID string) error
}
