package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_getSessionStore(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.Session.Store = "memory"
	s, err := cfg.getSessionStore(nil)
	require.NoError(t, err)
	assert.NotNil(t, s)

	cfg.Session.Store = "redis"
	_, err = cfg.getSessionStore(nil)
	assert.Error(t, err)
}

func TestProvideRouterConfig(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.DevMode = true
	cfg.Origin = "http://localhost:3000"
	cfg.Gzip = true
	cfg.AccessLog.Enabled = true

	rc := provideRouterConfig(&cfg)
	assert.True(t, rc.Development)
	assert.True(t, rc.Gzipped)
	assert.True(t, rc.AccessLogging)
	assert.Equal(t, []string{"http://localhost:3000"}, rc.AllowOrigins)
	assert.Equal(t, Version, rc.Version)
}
