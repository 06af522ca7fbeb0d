package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jochebedafua/icd-diagnosis-api/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ObjectStore fetches import files from a MinIO/S3 bucket so catalog loads
// can run against published CSV drops instead of files on the host.
type ObjectStore struct {
	client *minio.Client
	bucket string
	logger *logrus.Logger
}

func NewObjectStore(cfg *config.ObjectStoreConfig, logger *logrus.Logger) (*ObjectStore, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("Object store client initialized successfully")

	return &ObjectStore{
		client: client,
		bucket: cfg.BucketName,
		logger: logger,
	}, nil
}

// Download fetches one object into a temporary directory and returns the
// local path. The caller owns cleanup of the directory.
func (s *ObjectStore) Download(ctx context.Context, object, destDir string) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return "", fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	localPath := filepath.Join(destDir, filepath.Base(object))
	if err := s.client.FGetObject(ctx, s.bucket, object, localPath, minio.GetObjectOptions{}); err != nil {
		return "", fmt.Errorf("failed to download %s: %w", object, err)
	}

	info, err := os.Stat(localPath)
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"object": object,
		"bytes":  info.Size(),
	}).Info("Downloaded import file")

	return localPath, nil
}
