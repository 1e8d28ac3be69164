// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

/*
Package storage provides an S3-compatible object store client for project
files and portfolio media.

It targets Cloudflare R2 in production but works against MinIO or AWS S3
in development, selected purely by configuration.

Core Responsibilities:

  - Uploads: streaming PutObject with explicit content type.
  - Addressing: stable object keys, public URL construction.
  - Cleanup: best-effort removal when the owning row is deleted.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/champastudio/champa/internal/platform/config"
)

// Store wraps an S3 client with bucket-scoped operations.
type Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
	logger    *slog.Logger
}

// New builds a bucket-scoped [Store] from application configuration.
//
// # Parameters
//   - ctx: Context for SDK configuration loading.
//   - cfg: Application configuration carrying S3 settings.
//   - logger: Structured logger for storage events.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {

	// R2/MinIO do not validate IAM, but the AWS SDK requires credentials.
	creds := credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(creds),
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		if cfg.S3Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.S3Endpoint)
			// R2 and MinIO serve buckets by path, not virtual host.
			options.UsePathStyle = true
		}
	})

	logger.Info("storage client configured",
		slog.String("bucket", cfg.S3Bucket),
		slog.String("region", cfg.S3Region),
	)

	return &Store{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
		logger:    logger,
	}, nil
}

// Upload streams an object into the bucket under the given key.
//
// The caller is responsible for size validation; nothing here enforces a
// ceiling because handlers reject oversized payloads before reaching storage.
func (s *Store) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storage: upload %q failed: %w", key, err)
	}

	return nil
}

// Remove deletes an object. Missing keys are not an error: removal runs
// after the owning database row is already gone.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: remove %q failed: %w", key, err)
	}

	return nil
}

// PublicURL returns the externally reachable URL for an object key.
func (s *Store) PublicURL(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}
