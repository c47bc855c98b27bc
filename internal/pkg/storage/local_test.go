package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)

	ctx := context.Background()
	key, err := s.Upload(ctx, strings.NewReader("avatar-bytes"), "avatars/e1/a.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "avatars/e1/a.jpg", key)

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "e1", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "avatar-bytes", string(data))

	assert.Equal(t, "/uploads/avatars/e1/a.jpg", s.URL(key))

	require.NoError(t, s.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, "avatars", "e1", "a.jpg"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, key))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	tests := []string{"../escape.txt", "avatars/../../escape.txt", ".", ""}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := s.Upload(context.Background(), strings.NewReader("x"), key, "text/plain")
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}
