// internal/storage/storage_minio.go
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	Client *minio.Client
	cfg    Config
}

func newMinio(cfg Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseTLS,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	return &MinioStorage{Client: client, cfg: cfg}, nil
}

func (m *MinioStorage) Upload(ctx context.Context, bucket, objectPath string, data []byte, contentType string) (string, error) {
	bucket = bucketOr(m.cfg, bucket)
	fullPath := getFullPath(m.cfg.BasePath, objectPath)

	_, err := m.Client.PutObject(ctx, bucket, fullPath, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", fullPath, err)
	}
	return objectURL(m.cfg, bucket, fullPath), nil
}

func (m *MinioStorage) Delete(ctx context.Context, bucket, objectPath string) error {
	fullPath := getFullPath(m.cfg.BasePath, objectPath)
	if err := m.Client.RemoveObject(ctx, bucketOr(m.cfg, bucket), fullPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("deleting %s: %w", fullPath, err)
	}
	return nil
}
