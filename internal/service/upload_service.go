package service

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/velora-shop/velora/internal/config"
	"github.com/velora-shop/velora/internal/logger"
)

// MediaUploader abstracts the external image host. A nil uploader means
// image upload is not configured.
type MediaUploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// UploadService validates incoming image files and hands them to the
// media host.
type UploadService struct {
	cfg      config.UploadConfig
	uploader MediaUploader
}

// NewUploadService creates the upload service. uploader may be nil.
func NewUploadService(cfg config.UploadConfig, uploader MediaUploader) *UploadService {
	return &UploadService{cfg: cfg, uploader: uploader}
}

// Enabled reports whether a media host is configured.
func (s *UploadService) Enabled() bool {
	return s.uploader != nil
}

// UploadImage validates and uploads one multipart image, returning its
// hosted URL.
func (s *UploadService) UploadImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if s.uploader == nil {
		return "", ErrMediaUnavailable
	}
	if header == nil {
		return "", FieldErrors{"image": "image file is required"}
	}
	if s.cfg.MaxSize > 0 && header.Size > s.cfg.MaxSize {
		return "", FieldErrors{"image": "image exceeds the maximum upload size"}
	}
	if !s.typeAllowed(header.Header.Get("Content-Type")) {
		return "", FieldErrors{"image": "image type is not allowed"}
	}
	if !s.extensionAllowed(header.Filename) {
		return "", FieldErrors{"image": "image extension is not allowed"}
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	url, err := s.uploader.Upload(ctx, file, header.Filename)
	if err != nil {
		logger.Errorw("image_upload_failed", "filename", header.Filename, "error", err)
		return "", err
	}
	logger.Infow("image_uploaded", "filename", header.Filename, "url", url)
	return url, nil
}

func (s *UploadService) typeAllowed(contentType string) bool {
	if len(s.cfg.AllowedTypes) == 0 {
		return true
	}
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	for _, allowed := range s.cfg.AllowedTypes {
		if normalized == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func (s *UploadService) extensionAllowed(filename string) bool {
	if len(s.cfg.AllowedExtensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range s.cfg.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
