package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// Store persists uploaded images and resolves their public URLs
type Store interface {
	// Save normalizes img and writes it under dir, returning the stored path
	Save(ctx context.Context, dir string, img []byte) (string, error)
	Delete(ctx context.Context, stored string) error
	URL(stored string) string
}

// FileStore writes images to a local directory served under a URL prefix
type FileStore struct {
	root    string
	baseURL string
}

// NewFileStore creates a store rooted at root, served from baseURL
func NewFileStore(root, baseURL string) *FileStore {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &FileStore{root: root, baseURL: baseURL}
}

// Root is the directory files are written to
func (s *FileStore) Root() string {
	return s.root
}

func (s *FileStore) Save(ctx context.Context, dir string, img []byte) (string, error) {
	if len(img) == 0 {
		return "", domain.NewValidationError("image", "image is required")
	}
	if len(img) > MaxImageBytes {
		return "", domain.NewValidationError("image", "image is too large")
	}

	// Dimensions come from the header, before any pixel buffer is allocated
	cfg, format, err := image.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		logger.FromContext(ctx).Debug("Rejected image upload", "error", err)
		return "", domain.NewValidationError("image", "unsupported image format")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		logger.FromContext(ctx).Debug("Rejected oversized image", "format", format, "width", cfg.Width, "height", cfg.Height)
		return "", domain.NewValidationError("image", "image dimensions are too large")
	}

	src, err := imaging.Decode(bytes.NewReader(img), imaging.AutoOrientation(true))
	if err != nil {
		logger.FromContext(ctx).Debug("Rejected image upload", "error", err)
		return "", domain.NewValidationError("image", "unsupported image format")
	}

	var buf bytes.Buffer
	fitted := imaging.Fit(src, MaxImageWidth, MaxImageHeight, imaging.Lanczos)
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return "", fmt.Errorf(ErrMsgEncodeImageFailed, err)
	}

	stored := path.Join(dir, uuid.NewString()+".jpg")
	target := filepath.Join(s.root, filepath.FromSlash(stored))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf(ErrMsgWriteFileFailed, err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf(ErrMsgWriteFileFailed, err)
	}
	return stored, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *FileStore) Delete(_ context.Context, stored string) error {
	if stored == "" {
		return nil
	}
	clean := path.Clean("/" + stored)[1:]
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(clean)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(ErrMsgRemoveFileFailed, err)
	}
	return nil
}

func (s *FileStore) URL(stored string) string {
	if stored == "" {
		return ""
	}
	return s.baseURL + stored
}

// DecodeDataURL extracts the payload of a base64 data URL such as
// "data:image/png;base64,iVBOR...". A bare base64 string is accepted too.
func DecodeDataURL(raw string) ([]byte, error) {
	payload := strings.TrimSpace(raw)
	if strings.HasPrefix(payload, "data:") {
		header, data, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, domain.NewValidationError("image", "expected a base64 data URL")
		}
		if !strings.HasPrefix(header, "data:image/") {
			return nil, domain.NewValidationError("image", "data URL is not an image")
		}
		payload = data
	}

	img, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domain.NewValidationError("image", "invalid base64 payload")
	}
	if len(img) == 0 {
		return nil, domain.NewValidationError("image", "image is required")
	}
	return img, nil
}
