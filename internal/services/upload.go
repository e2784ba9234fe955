package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/atelierhaus/atelier-backend/internal/platform/apierr"
	"github.com/atelierhaus/atelier-backend/internal/platform/logger"
)

const maxUploadBytes = 32 << 20 // 32 MiB

// UploadResult is what handlers hand back to the client; URL is relative to
// the server origin and served by the static uploads route.
type UploadResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type UploadService interface {
	Save(ctx context.Context, header *multipart.FileHeader) (*UploadResult, error)
}

type uploadService struct {
	log       *logger.Logger
	uploadDir string
	baseURL   string
}

func NewUploadService(log *logger.Logger, uploadDir, baseURL string) UploadService {
	return &uploadService{
		log:       log.With("service", "UploadService"),
		uploadDir: uploadDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

func (s *uploadService) Save(ctx context.Context, header *multipart.FileHeader) (*UploadResult, error) {
	if header == nil {
		return nil, apierr.NewValidation(map[string]string{"file": "is required"})
	}
	if header.Size > maxUploadBytes {
		return nil, apierr.NewValidation(map[string]string{"file": "exceeds the 32MB upload limit"})
	}

	// stored name is random; the original name survives only in the result
	ext := filepath.Ext(header.Filename)
	stored := uuid.New().String() + ext

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.uploadDir, stored))
	if err != nil {
		return nil, fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("write stored file: %w", err)
	}

	s.log.Info("Stored upload", "name", header.Filename, "stored", stored, "size", header.Size)
	return &UploadResult{
		Name: header.Filename,
		URL:  s.baseURL + "/uploads/" + stored,
	}, nil
}
