package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/attendance-admin/attendance-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Import for WebP decoding support
)

const (
	// avatarMaxEdge bounds the longer side of a stored avatar
	avatarMaxEdge = 512
	avatarQuality = 85
)

var ErrUnsupportedImage = errors.New("invalid file type: only jpg, jpeg, png, webp allowed")

type FileService interface {
	// UploadAvatar stores a normalized JPEG avatar and returns its storage key
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	FileURL(key string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadAvatar uploads employee avatar
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", ErrUnsupportedImage
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode avatar: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, fitWithin(img, avatarMaxEdge), &jpeg.Options{Quality: avatarQuality}); err != nil {
		return "", fmt.Errorf("failed to encode avatar: %w", err)
	}

	// avatars/{employeeID}/{employeeID}-{uuid}.jpg
	newFilename := fmt.Sprintf("%s-%s.jpg", employeeID, uuid.New().String())
	key := path.Join("avatars", employeeID, newFilename)

	uploadedKey, err := s.storage.Upload(ctx, buf, key, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return uploadedKey, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}

func (s *fileServiceImpl) FileURL(key string) string {
	return s.storage.URL(key)
}

// fitWithin downscales img so neither side exceeds maxEdge, keeping the aspect ratio
func fitWithin(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	if w >= h {
		h = max(1, h*maxEdge/w)
		w = maxEdge
	} else {
		w = max(1, w*maxEdge/h)
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
