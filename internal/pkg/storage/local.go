package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage keeps files on disk; the router serves basePath at baseURL.
type LocalStorage struct {
	basePath string
	baseURL  string // e.g., "/uploads" or "http://localhost:8080/uploads"
}

func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}

	// Create base directory if not exists
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: abs,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// BasePath is the directory served for uploaded files
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

func (s *LocalStorage) Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error) {
	fullPath, cleanKey, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return cleanKey, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath, _, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) URL(key string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(key)), "/")
}

// resolve maps a key to a path inside basePath, rejecting traversal
func (s *LocalStorage) resolve(key string) (fullPath, cleanKey string, err error) {
	cleanKey = filepath.Clean(filepath.FromSlash(key))
	if cleanKey == "." || filepath.IsAbs(cleanKey) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}

	fullPath = filepath.Join(s.basePath, cleanKey)
	rel, err := filepath.Rel(s.basePath, fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}

	return fullPath, filepath.ToSlash(cleanKey), nil
}
