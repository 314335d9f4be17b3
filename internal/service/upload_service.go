package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/lembranca/memorial-backend/pkg/storage"
)

const maxUploadSize = 10 << 20 // 10 MB

// UploadService stores photo blobs and hands back their public URL/key
type UploadService struct {
	s3 *storage.S3Client
}

// NewUploadService creates a new UploadService
func NewUploadService(s3 *storage.S3Client) *UploadService {
	return &UploadService{s3: s3}
}

// UploadPhoto streams a multipart file into object storage. The caller
// persists only the returned URL/key, never the bytes.
func (s *UploadService) UploadPhoto(ctx context.Context, file *multipart.FileHeader) (*storage.UploadResult, error) {
	if s.s3 == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	if file.Size > maxUploadSize {
		return nil, fmt.Errorf("arquivo excede o limite de 10MB")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := storage.GenerateKey("memorials", file.Filename)
	return s.s3.Upload(ctx, key, src, contentType, file.Size)
}
