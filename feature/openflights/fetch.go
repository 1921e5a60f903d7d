package openflights

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Downloader saves remote feeds to local files.
type Downloader struct {
	Client *http.Client
	logger *zap.Logger
}

// NewDownloader creates a downloader with the given request timeout.
func NewDownloader(timeout time.Duration, logger *zap.Logger) *Downloader {
	return &Downloader{
		Client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch downloads url into path. The file is replaced only once the whole
// body has been received; an empty body leaves any previous copy in place.
func (d *Downloader) Fetch(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", url, err)
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	d.logger.Info("Feed response",
		zap.String("file", filepath.Base(path)),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", url, err)
	}
	if len(body) == 0 {
		d.logger.Warn("Empty HTTP response body", zap.String("file", path))
		return nil
	}

	return writeFileAtomic(path, body)
}

// writeFileAtomic writes data to a temporary sibling of path and renames it.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
