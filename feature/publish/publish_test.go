package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"route-atlas/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := writeFile(t, dir, "airports.csv", "IATA3\nJFK")
	r := writeFile(t, dir, "earthroutes.csv", "ID")

	client := new(mocks.Client)
	client.On("BucketExists", ctx, "route-atlas").Return(false, nil)
	client.On("MakeBucket", ctx, "route-atlas", minio.MakeBucketOptions{}).Return(nil)
	client.On("PutObject", ctx, "route-atlas", "latest/airports.csv", mock.Anything, int64(9),
		minio.PutObjectOptions{ContentType: "text/csv"}).
		Return(minio.UploadInfo{ETag: "a1"}, nil)
	client.On("PutObject", ctx, "route-atlas", "latest/earthroutes.csv", mock.Anything, int64(2),
		minio.PutObjectOptions{ContentType: "text/csv"}).
		Return(minio.UploadInfo{ETag: "r1"}, nil)

	uploads, err := NewPublisher(client, "route-atlas", "/latest/", zap.NewNop()).Publish(ctx, a, r)
	require.NoError(t, err)
	require.Len(t, uploads, 2)
	assert.Equal(t, Upload{File: a, Key: "latest/airports.csv", Size: 9, ETag: "a1"}, uploads[0])
	assert.Equal(t, "r1", uploads[1].ETag)

	client.AssertExpectations(t)
}

func TestPublish_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Bucket Check", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(false, errors.New("denied"))

		_, err := NewPublisher(client, "b", "", zap.NewNop()).Publish(ctx, "x.csv")
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("Missing File", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(true, nil)

		_, err := NewPublisher(client, "b", "", zap.NewNop()).Publish(ctx, filepath.Join(t.TempDir(), "absent.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(true, nil)
		client.On("PutObject", ctx, "b", "airports.csv", mock.Anything, int64(3), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("slow down"))

		file := writeFile(t, t.TempDir(), "airports.csv", "abc")
		uploads, err := NewPublisher(client, "b", "", zap.NewNop()).Publish(ctx, file)
		assert.ErrorContains(t, err, "slow down")
		assert.Empty(t, uploads)
	})
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", contentType("a.CSV"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType("a.xlsx"))
	assert.Equal(t, "application/octet-stream", contentType("a.prom"))
}
