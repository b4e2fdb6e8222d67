package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"clinica/config"
)

type S3Storage struct {
	client *minio.Client
	cfg    config.S3Config
	logger *zap.Logger
}

func NewS3Storage(cfg config.S3Config, logger *zap.Logger) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar o cliente S3: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar o bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(context.Background(), cfg.Bucket, minio.MakeBucketOptions{
			Region: cfg.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar o bucket: %w", err)
		}
	}

	return &S3Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (s *S3Storage) UploadFile(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("arquivo vazio")
	}

	ext := path.Ext(filename)
	objectName := fmt.Sprintf("relatorios/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar arquivo para o S3: %w", err)
	}

	s.logger.Info("arquivo enviado ao armazenamento",
		zap.String("object", objectName),
		zap.Int("size", len(data)),
	)

	return objectName, nil
}

func (s *S3Storage) DeleteFile(ctx context.Context, fileURL string) error {
	objectName := s.objectName(fileURL)
	if objectName == "" {
		return errors.New("caminho de arquivo vazio")
	}

	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("erro ao remover arquivo do S3: %w", err)
	}

	return nil
}

func (s *S3Storage) GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error) {
	objectName := s.objectName(fileURL)
	if objectName == "" {
		return "", errors.New("caminho de arquivo vazio")
	}

	url, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar URL assinada: %w", err)
	}

	return url.String(), nil
}

func (s *S3Storage) objectName(fileURL string) string {
	return strings.TrimPrefix(strings.TrimSpace(fileURL), "/")
}
