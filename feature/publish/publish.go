// Package publish uploads the output tables to object storage.
package publish

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"route-atlas/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Upload describes one published object.
type Upload struct {
	File string
	Key  string
	Size int64
	ETag string
}

// Publisher copies local files into a bucket.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewPublisher creates a publisher writing under prefix in bucket.
func NewPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/"), logger: logger}
}

// Key returns the object key of a local file.
func (p *Publisher) Key(file string) string {
	return path.Join(p.prefix, filepath.Base(file))
}

// Publish uploads every file, creating the bucket first when needed. It stops
// at the first failure.
func (p *Publisher) Publish(ctx context.Context, files ...string) ([]Upload, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		p.logger.Info("Created bucket", zap.String("bucket", p.bucket))
	}

	uploads := make([]Upload, 0, len(files))
	for _, file := range files {
		up, err := p.upload(ctx, file)
		if err != nil {
			return uploads, err
		}
		p.logger.Info("Published file",
			zap.String("file", file),
			zap.String("bucket", p.bucket),
			zap.String("key", up.Key),
			zap.Int64("size", up.Size))
		uploads = append(uploads, up)
	}
	return uploads, nil
}

func (p *Publisher) upload(ctx context.Context, file string) (Upload, error) {
	f, err := os.Open(file)
	if err != nil {
		return Upload{}, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Upload{}, fmt.Errorf("failed to stat %s: %w", file, err)
	}

	key := p.Key(file)
	res, err := p.client.PutObject(ctx, p.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType(file),
	})
	if err != nil {
		return Upload{}, fmt.Errorf("failed to upload %s: %w", file, err)
	}
	return Upload{File: file, Key: key, Size: info.Size(), ETag: res.ETag}, nil
}

func contentType(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".csv":
		return "text/csv"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
