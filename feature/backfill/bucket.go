package backfill

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"route-atlas/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketStore keeps cache entries as objects under a bucket prefix.
type BucketStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketStore creates a store on bucket. An empty prefix stores entries at
// the bucket root.
func NewBucketStore(client storage.Client, bucket, prefix string) *BucketStore {
	return &BucketStore{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *BucketStore) key(code string) string {
	return path.Join(s.prefix, code+entryExt)
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *BucketStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

func (s *BucketStore) Exists(ctx context.Context, code string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.key(code), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if storage.IsNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat cache entry %s: %w", code, err)
}

func (s *BucketStore) Put(ctx context.Context, code string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.key(code), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload cache entry %s: %w", code, err)
	}
	return nil
}

func (s *BucketStore) Get(ctx context.Context, code string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(code), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry %s: %w", code, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry %s: %w", code, err)
	}
	return data, nil
}

func (s *BucketStore) List(ctx context.Context) ([]string, error) {
	opts := minio.ListObjectsOptions{Recursive: true}
	if s.prefix != "" {
		opts.Prefix = s.prefix + "/"
	}

	var codes []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list cache entries: %w", obj.Err)
		}
		if code, ok := codeFromName(path.Base(obj.Key)); ok {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes, nil
}
