package storage

import (
	"context"
	"errors"
	"io"
)

var ErrInvalidPath = errors.New("invalid file path")

// FileStorage stores uploaded objects under relative keys such as
// "avatars/<employee-id>/<name>.jpg".
type FileStorage interface {
	// Upload writes a file and returns its cleaned key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file, succeeding if it is already gone
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a key
	URL(path string) string
}
