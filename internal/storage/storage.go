// internal/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Supported providers.
const (
	ProviderMinio = "minio"
	ProviderS3    = "s3"
)

// Config selects and configures an object storage provider.
type Config struct {
	Provider  string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseTLS    bool
	BasePath  string
	// PublicURL is the base of the URLs handed back to clients. When empty
	// the URL is derived from Endpoint and UseTLS.
	PublicURL string
}

// ObjectStore uploads and removes attachment objects.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, objectPath string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, bucket, objectPath string) error
}

// New returns the provider named by cfg.Provider.
func New(cfg Config) (ObjectStore, error) {
	switch cfg.Provider {
	case ProviderMinio, "":
		return newMinio(cfg)
	case ProviderS3:
		return newS3(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}

// getFullPath joins the configured base path and the object name.
func getFullPath(basePath, objectName string) string {
	objectName = strings.TrimPrefix(objectName, "/")
	basePath = strings.Trim(basePath, "/")
	if basePath == "" {
		return objectName
	}
	return path.Join(basePath, objectName)
}

func bucketOr(cfg Config, bucket string) string {
	if bucket != "" {
		return bucket
	}
	return cfg.Bucket
}

// objectURL builds the public URL of an uploaded object.
func objectURL(cfg Config, bucket, fullPath string) string {
	base := strings.TrimRight(cfg.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseTLS {
			scheme = "https"
		}
		base = scheme + "://" + strings.TrimRight(cfg.Endpoint, "/")
	}
	return base + "/" + url.PathEscape(bucket) + "/" + (&url.URL{Path: fullPath}).EscapedPath()
}
