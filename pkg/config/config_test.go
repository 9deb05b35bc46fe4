package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grubdash/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grubdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.False(t, cfg.TLS())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
addr: ":9090"
id_strategy: uuid
cors_origins: ["https://grubdash.example"]
shutdown_timeout: 3s
seed_file: seed.yaml
`)
	t.Setenv("ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "uuid", cfg.IDStrategy)
	assert.Equal(t, []string{"https://grubdash.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
	assert.Equal(t, "grubdash", cfg.ServiceName)
}

func TestLoad_EnvLists(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("OTEL_PROBABILITY", "0.25")
	t.Setenv("OTEL_STDOUT", "true")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.InDelta(t, 0.25, cfg.TraceProbability, 0.0001)
	assert.True(t, cfg.OTELStdout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown strategy", map[string]string{"ID_STRATEGY": "snowflake"}},
		{"redis without addr", map[string]string{"ID_STRATEGY": "redis"}},
		{"half tls", map[string]string{"TLS_CERT": "server.crt"}},
		{"bad probability", map[string]string{"OTEL_PROBABILITY": "2"}},
		{"bad duration", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
