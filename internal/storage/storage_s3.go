// internal/storage/storage_s3.go
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the part of the S3 client the store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Storage struct {
	Client S3API
	cfg    Config
}

func newS3(cfg Config) (*S3Storage, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			},
		}),
		config.WithRegion(cfg.Region),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, config.WithBaseEndpoint(cfg.Endpoint))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.Endpoint != ""
	})
	return NewS3Storage(client, cfg), nil
}

// NewS3Storage wraps an existing client.
func NewS3Storage(client S3API, cfg Config) *S3Storage {
	return &S3Storage{Client: client, cfg: cfg}
}

func (s *S3Storage) Upload(ctx context.Context, bucket, objectPath string, data []byte, contentType string) (string, error) {
	bucket = bucketOr(s.cfg, bucket)
	fullPath := getFullPath(s.cfg.BasePath, objectPath)

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(fullPath),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", fullPath, err)
	}
	return objectURL(s.cfg, bucket, fullPath), nil
}

func (s *S3Storage) Delete(ctx context.Context, bucket, objectPath string) error {
	fullPath := getFullPath(s.cfg.BasePath, objectPath)
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketOr(s.cfg, bucket)),
		Key:    aws.String(fullPath),
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", fullPath, err)
	}
	return nil
}
