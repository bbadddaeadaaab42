package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/tkpair/pkg/archive"
	"github.com/arc-language/tkpair/pkg/platform"
	"github.com/arc-language/tkpair/pkg/tree"
)

// Config holds tkpair configuration
type Config struct {
	Platform      string   `yaml:"platform,omitempty"`       // Overrides platform detection
	SearchPaths   []string `yaml:"search_paths,omitempty"`   // Directories scanned for library records
	DestPrefix    string   `yaml:"dest_prefix"`              // Bundle directory for the Tcl/Tk trees
	Excludes      []string `yaml:"excludes,omitempty"`       // Extra exclude globs for both trees
	ArchiveFormat string   `yaml:"archive_format,omitempty"` // txz or nar
	Debug         bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Platform:      "", // Auto-detect
		DestPrefix:    getDefaultDestPrefix(),
		ArchiveFormat: string(archive.FormatTarXZ),
		Debug:         false,
	}
}

// DefaultPath returns the config file location used when none is given
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tkpair", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks the enumerated fields
func (c *Config) Validate() error {
	if c.Platform != "" {
		if _, err := platform.Parse(c.Platform); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if c.ArchiveFormat != "" {
		if _, err := archive.ParseFormat(c.ArchiveFormat); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

// PlatformKind resolves the configured platform, detecting it when unset
func (c *Config) PlatformKind() (platform.Kind, error) {
	if c.Platform == "" {
		return platform.Detect(), nil
	}
	return platform.Parse(c.Platform)
}

func getDefaultDestPrefix() string {
	if prefix := os.Getenv("TKPAIR_DEST_PREFIX"); prefix != "" {
		return prefix
	}
	return tree.DefaultPrefix
}
