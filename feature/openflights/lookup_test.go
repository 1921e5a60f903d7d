package openflights

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "SEARCH", r.PostForm.Get("action"))
		assert.Equal(t, "airports", r.PostForm.Get("db"))
		assert.Equal(t, "ALL", r.PostForm.Get("country"))

		switch r.PostForm.Get("iata") {
		case "XXA":
			w.Write([]byte(`{"status":1,"airports":[{"iata":"XXA","name":"Alpha","x":"1.5","y":2}]}`))
		case "XXE":
			w.Write([]byte("  "))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewLookupClient(server.URL, 5*time.Second)

	t.Run("Success", func(t *testing.T) {
		body, err := client.Lookup(context.Background(), "XXA")
		require.NoError(t, err)
		assert.Contains(t, string(body), `"iata":"XXA"`)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		_, err := client.Lookup(context.Background(), "XXE")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyBody))

		var lerr *LookupError
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, "XXE", lerr.Code)
		assert.Equal(t, http.StatusOK, lerr.Status)
	})

	t.Run("ServerError", func(t *testing.T) {
		_, err := client.Lookup(context.Background(), "XXZ")
		var lerr *LookupError
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, http.StatusInternalServerError, lerr.Status)
		assert.Contains(t, err.Error(), "HTTP 500")
	})

	t.Run("TransportError", func(t *testing.T) {
		c := NewLookupClient("http://127.0.0.1:1", time.Second)
		_, err := c.Lookup(context.Background(), "XXA")
		var lerr *LookupError
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, 0, lerr.Status)
	})
}

func TestSearchForm(t *testing.T) {
	form := SearchForm("JFK")
	assert.Equal(t, "JFK", form.Get("iata"))
	assert.Equal(t, "false", form.Get("iatafilter"))
	assert.Equal(t, "U", form.Get("dst"))
	assert.Equal(t, "0", form.Get("offset"))
	assert.Len(t, form, 16)
}

func TestParseLookupResponse(t *testing.T) {
	resp, err := ParseLookupResponse([]byte(`{"airports":[{"iata":"XXA","elevation":13,"x":"40.6398"}]}`))
	require.NoError(t, err)
	require.Len(t, resp.Airports, 1)
	assert.Equal(t, json.Number("13"), resp.Airports[0]["elevation"])
	assert.Equal(t, "40.6398", resp.Airports[0]["x"])

	empty, err := ParseLookupResponse([]byte(`{"airports":[]}`))
	require.NoError(t, err)
	assert.Empty(t, empty.Airports)

	_, err = ParseLookupResponse([]byte(`<html>`))
	assert.Error(t, err)
}
