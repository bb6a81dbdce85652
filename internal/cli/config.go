package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/mhpenta/nanobanana"
)

// Config holds the defaults read from the configuration file. Every field
// is optional; command-line flags take precedence.
type Config struct {
	// APIKey is used when GEMINI_API_KEY is not set anywhere else
	APIKey string `yaml:"api_key,omitempty"`

	// Model is the default model id
	Model string `yaml:"model,omitempty"`

	// AspectRatio is the default aspect ratio, e.g. "16:9"
	AspectRatio string `yaml:"aspect_ratio,omitempty"`

	// Size is the default output size (1K, 2K, 4K)
	Size string `yaml:"size,omitempty"`

	// Timeout is a Go duration string, e.g. "90s"
	Timeout string `yaml:"timeout,omitempty"`

	configPath string
}

// LoadConfig reads the configuration at path. A missing file yields an
// empty Config.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{configPath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.configPath = path

	return cfg, nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// Apply overlays the file's values on base. Fields left empty in the file
// keep the value from base.
func (c *Config) Apply(base nanobanana.GenerateConfig) (nanobanana.GenerateConfig, error) {
	if c.Model != "" {
		base.Model = nanobanana.Model(c.Model)
	}
	if c.AspectRatio != "" {
		base.AspectRatio = nanobanana.AspectRatio(c.AspectRatio)
	}
	if c.Size != "" {
		base.Size = nanobanana.ImageSize(c.Size)
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return base, fmt.Errorf("%w: timeout %q in %s", nanobanana.ErrInvalidConfig, c.Timeout, c.configPath)
		}
		base.Timeout = d
	}
	return base, nil
}

// MaskAPIKey masks the API key for display
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
