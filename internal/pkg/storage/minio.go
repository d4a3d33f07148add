package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/alumnet/backend/internal/pkg/models"
)

// MediaStore uploads and deletes media objects
type MediaStore interface {
	Upload(ctx context.Context, prefix, fileName string, file io.Reader, size int64) (objectName string, url string, err error)
	Delete(ctx context.Context, objectName string) error
}

// MinioStore is an S3-compatible media store backed by minio
type MinioStore struct {
	client *minio.Client
	cfg    models.MinioConfig
}

// NewMinioStore creates a minio client and ensures the bucket exists
func NewMinioStore(cfg models.MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioStore{client: client, cfg: cfg}, nil
}

// Upload stores a media object under prefix/yyyy/mm/<uuid><ext> and
// returns the object name and its public URL. Failures surface to the
// caller unchanged; there is no retry and no partial-state cleanup.
func (m *MinioStore) Upload(ctx context.Context, prefix, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("%s/%d/%02d/%s%s",
		prefix,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.Bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload object: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(m.cfg.PublicURL, "/"), m.cfg.Bucket, objectName)

	return objectName, url, nil
}

// Delete removes a media object
func (m *MinioStore) Delete(ctx context.Context, objectName string) error {
	if err := m.client.RemoveObject(ctx, m.cfg.Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
