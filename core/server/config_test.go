package server_test

import (
	"testing"
	"time"

	"route-atlas/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Address())
}

func TestConfig_CacheTTL(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"Configured", 60, time.Minute},
		{"Zero", 0, 5 * time.Minute},
		{"Negative", -1, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{CacheTTLSeconds: tt.seconds}
			assert.Equal(t, tt.want, c.CacheTTL())
		})
	}
}
