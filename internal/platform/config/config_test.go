// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/platform/config"
)

/*
TestLoad_Defaults verifies that an empty environment yields a usable in-memory setup.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout)
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.HasCache())
	assert.False(t, cfg.HasRemote())
	assert.False(t, cfg.HasAuth())
}

/*
TestLoad_Overrides checks that optional backends switch on when their variables are set.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/shelfmark")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REMOTE_API_URL", "http://localhost:8000/api")
	t.Setenv("REMOTE_TIMEOUT", "3s")
	t.Setenv("EXTRA_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.HasDatabase())
	assert.True(t, cfg.HasCache())
	assert.True(t, cfg.HasRemote())
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

/*
TestLoad_RejectsBadTimeout ensures a non-positive remote timeout fails fast.
*/
func TestLoad_RejectsBadTimeout(t *testing.T) {
	t.Setenv("REMOTE_TIMEOUT", "0s")

	_, err := config.Load()
	assert.Error(t, err)
}
