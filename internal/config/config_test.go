package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raikerian/go-stereo-codec/pkg/audio"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), envconfig.MapLookuper(nil))
	require.NoError(t, err)

	assert.Equal(t, audio.DefaultChunkSize, cfg.Codec.ChunkSize)
	assert.Equal(t, audio.DefaultSampleRate, cfg.Output.SampleRate)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
codec:
  chunk_size: 64
output:
  sample_rate: 48000
`)

	cfg, err := load(context.Background(), path, envconfig.MapLookuper(nil))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 64, cfg.Codec.ChunkSize)
	assert.Equal(t, 48000, cfg.Output.SampleRate)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log_level: debug\ncodec:\n  chunk_size: 64\n")

	cfg, err := load(context.Background(), path, envconfig.MapLookuper(map[string]string{
		"STEREO_LOG_LEVEL":   "warn",
		"STEREO_CHUNK_SIZE":  "128",
		"STEREO_SAMPLE_RATE": "22050",
	}))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 128, cfg.Codec.ChunkSize)
	assert.Equal(t, 22050, cfg.Output.SampleRate)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "chunk not frame aligned", body: "codec:\n  chunk_size: 6\n"},
		{name: "negative chunk", body: "codec:\n  chunk_size: -4\n"},
		{name: "bad level", body: "log_level: loud\n"},
		{name: "bad rate from env", env: map[string]string{"STEREO_SAMPLE_RATE": "-1"}},
		{name: "malformed yaml", body: "codec: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := load(context.Background(), path, envconfig.MapLookuper(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_ChunkSizeError(t *testing.T) {
	path := writeConfig(t, "codec:\n  chunk_size: 10\n")
	_, err := load(context.Background(), path, envconfig.MapLookuper(nil))
	assert.ErrorIs(t, err, audio.ErrInvalidChunkSize)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STEREO_TEST_LOAD_ENV=yes\n"), 0o600))
	t.Setenv("STEREO_TEST_LOAD_ENV", "")
	require.NoError(t, os.Unsetenv("STEREO_TEST_LOAD_ENV"))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "yes", os.Getenv("STEREO_TEST_LOAD_ENV"))

	err := LoadEnv(filepath.Join(dir, "missing.env"))
	assert.True(t, os.IsNotExist(err))
}
