package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Raikerian/go-stereo-codec/pkg/audio"
)

// EnvPrefix is prepended to every environment override, e.g.
// STEREO_LOG_LEVEL.
const EnvPrefix = "STEREO_"

// CodecConfig stores extractor settings.
type CodecConfig struct {
	// ChunkSize is the extractor read size in bytes. Must be a multiple of 4.
	ChunkSize int `yaml:"chunk_size" env:"CHUNK_SIZE, overwrite"`
}

// OutputConfig stores settings used when writing files.
type OutputConfig struct {
	// SampleRate is written into WAV headers when the input carried none
	// (headerless .pcm/.raw streams).
	SampleRate int `yaml:"sample_rate" env:"SAMPLE_RATE, overwrite"`
}

// Config stores the application configuration.
type Config struct {
	Codec    CodecConfig  `yaml:"codec"`
	Output   OutputConfig `yaml:"output"`
	LogLevel string       `yaml:"log_level" env:"LOG_LEVEL, overwrite"`
}

// LoadConfig loads the configuration from the given file path, then applies
// STEREO_* environment overrides and defaults. A missing file is not an
// error.
func LoadConfig(filePath string) (*Config, error) {
	return load(context.Background(), filePath, envconfig.OsLookuper())
}

func load(ctx context.Context, filePath string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", filePath, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", filePath, err)
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, lookuper),
	}); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Codec.ChunkSize == 0 {
		c.Codec.ChunkSize = audio.DefaultChunkSize
	}
	if c.Output.SampleRate == 0 {
		c.Output.SampleRate = audio.DefaultSampleRate
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks values that would otherwise fail deep inside the codec.
func (c *Config) Validate() error {
	if c.Codec.ChunkSize <= 0 || c.Codec.ChunkSize%audio.FrameBytes != 0 {
		return fmt.Errorf("codec.chunk_size: %w: got %d", audio.ErrInvalidChunkSize, c.Codec.ChunkSize)
	}
	if c.Output.SampleRate <= 0 {
		return fmt.Errorf("output.sample_rate must be positive, got %d", c.Output.SampleRate)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}

// LoadEnv loads KEY=value pairs from the given .env files (default ".env")
// into the process environment. Missing files are reported with an error
// satisfying os.IsNotExist so callers can ignore them.
func LoadEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}
