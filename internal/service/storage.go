package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Salman-Farid/Mofa-s-Kitchen-Buddy/config"
)

// ImageStore archives uploaded recipe photos so an OCR-created recipe
// keeps a pointer back to its source image.
type ImageStore interface {
	Save(ctx context.Context, data []byte, ext string) (string, error)
}

// LocalImageStore writes photos into a directory on disk.
type LocalImageStore struct {
	dir    string
	logger *zap.Logger
}

// NewLocalImageStore creates the directory if needed.
func NewLocalImageStore(dir string, logger *zap.Logger) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &LocalImageStore{dir: dir, logger: logger}, nil
}

// Save stores the photo under a fresh UUID-based filename and returns its
// path.
func (s *LocalImageStore) Save(_ context.Context, data []byte, ext string) (string, error) {
	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	s.logger.Debug("stored uploaded image", zap.String("path", path))
	return path, nil
}

// S3ImageStore uploads photos to an S3 bucket.
type S3ImageStore struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// NewS3ImageStore builds an S3-backed store from the storage config.
func NewS3ImageStore(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*S3ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3ImageStore{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		logger: logger,
	}, nil
}

// Save uploads the photo under recipes/<uuid><ext> and returns the object
// URL.
func (s *S3ImageStore) Save(ctx context.Context, data []byte, ext string) (string, error) {
	key := "recipes/" + uuid.New().String() + ext
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: awssdk.String(s.bucket),
		Key:    awssdk.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}
	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	s.logger.Debug("uploaded image to S3", zap.String("key", key))
	return url, nil
}

// NewImageStore picks the S3 store when a bucket is configured and the
// local directory store otherwise.
func NewImageStore(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ImageStore, error) {
	if cfg.S3Bucket != "" {
		return NewS3ImageStore(ctx, cfg, logger)
	}
	return NewLocalImageStore(cfg.ImageDir, logger)
}
