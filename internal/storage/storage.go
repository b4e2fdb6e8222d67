package storage

import (
	"context"
	"time"
)

// FileStorage guarda os documentos gerados pelo módulo de relatórios.
type FileStorage interface {
	UploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error)

	DeleteFile(ctx context.Context, fileURL string) error

	GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error)
}
