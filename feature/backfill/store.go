package backfill

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"route-atlas/feature/openflights"
)

const entryExt = ".json"

// Store caches raw lookup responses by airport code.
type Store interface {
	// Exists reports whether code has a cache entry.
	Exists(ctx context.Context, code string) (bool, error)
	// Put writes the entry of code.
	Put(ctx context.Context, code string, data []byte) error
	// Get reads the entry of code.
	Get(ctx context.Context, code string) ([]byte, error)
	// List returns the codes of every cache entry, sorted.
	List(ctx context.Context) ([]string, error)
}

// codeFromName returns the code of a cache entry name, or false when the name is
// not a cache entry.
func codeFromName(name string) (string, bool) {
	if openflights.IsReserved(name) || !strings.HasSuffix(name, entryExt) {
		return "", false
	}
	code := strings.TrimSuffix(name, entryExt)
	return code, code != ""
}

// FileStore keeps cache entries as files in a directory.
type FileStore struct {
	Dir string
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(code string) string {
	return filepath.Join(s.Dir, code+entryExt)
}

func (s *FileStore) Exists(_ context.Context, code string) (bool, error) {
	_, err := os.Stat(s.path(code))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat cache entry %s: %w", code, err)
}

func (s *FileStore) Put(_ context.Context, code string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}
	if err := os.WriteFile(s.path(code), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", code, err)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, code string) ([]byte, error) {
	data, err := os.ReadFile(s.path(code))
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry %s: %w", code, err)
	}
	return data, nil
}

func (s *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list cache dir: %w", err)
	}

	var codes []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if code, ok := codeFromName(e.Name()); ok {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes, nil
}
