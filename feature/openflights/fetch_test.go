package openflights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDownloader_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/airports.dat":
			w.Write([]byte("1,\"Goroka Airport\"\n"))
		case "/empty.dat":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	d := NewDownloader(5*time.Second, zap.NewNop())
	dir := t.TempDir()

	t.Run("Success", func(t *testing.T) {
		path := filepath.Join(dir, AirportsFeedFile)
		require.NoError(t, d.Fetch(context.Background(), server.URL+"/airports.dat", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1,\"Goroka Airport\"\n", string(data))
	})

	t.Run("EmptyBodyKeepsPreviousCopy", func(t *testing.T) {
		path := filepath.Join(dir, "keep.dat")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		require.NoError(t, d.Fetch(context.Background(), server.URL+"/empty.dat", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})

	t.Run("HTTPError", func(t *testing.T) {
		path := filepath.Join(dir, "missing.dat")
		err := d.Fetch(context.Background(), server.URL+"/missing.dat", path)
		assert.ErrorContains(t, err, "HTTP 404")
		assert.NoFileExists(t, path)
	})

	t.Run("TransportError", func(t *testing.T) {
		err := d.Fetch(context.Background(), "http://127.0.0.1:1/routes.dat", filepath.Join(dir, RoutesFeedFile))
		assert.Error(t, err)
	})
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("airports.dat"))
	assert.True(t, IsReserved("routes.dat"))
	assert.True(t, IsReserved(".DS_Store"))
	assert.False(t, IsReserved("JFK.json"))
}
