package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestNew(t *testing.T) {
	app := newApp(Config{ApiKey: "secret", Skip: []string{"/metrics"}})

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"Missing Key", "/airports", "", fiber.StatusUnauthorized},
		{"Wrong Key", "/airports", "nope", fiber.StatusUnauthorized},
		{"Header Key", "/airports", "secret", fiber.StatusOK},
		{"Query Key", "/airports?api_key=secret", "", fiber.StatusOK},
		{"Skipped Path", "/metrics", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(Header, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	resp, err := newApp(Config{}).Test(httptest.NewRequest("GET", "/airports", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
