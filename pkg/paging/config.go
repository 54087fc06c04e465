package paging

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigFileName is the conventional name of a paging configuration file.
const ConfigFileName = "paging.json"

// Config is the on-disk form of registry settings:
//
//	{
//	  "defaults": {"pageNumber": 1, "pageSize": 25},
//	  "sliding": {"windowSize": 7}
//	}
type Config struct {
	// Defaults are the options used by collections created without them.
	Defaults Defaults `json:"defaults"`

	// Sliding configures the shared "sliding" generator.
	Sliding SlidingConfig `json:"sliding"`
}

// SlidingConfig configures the shared sliding generator.
type SlidingConfig struct {
	// WindowSize is the number of pages shown (default: 5).
	WindowSize int `json:"windowSize,omitempty"`
}

// NewConfig creates a Config with the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Defaults: Defaults{PageNumber: FallbackPageNumber, PageSize: FallbackPageSize},
		Sliding:  SlidingConfig{WindowSize: DefaultWindowSize},
	}
}

// LoadConfig reads a Config from path. Fields missing from the file keep
// their built-in defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("paging: read config: %w", err)
	}

	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("paging: parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in zero fields.
func (c *Config) applyDefaults() {
	if c.Defaults.PageNumber == 0 {
		c.Defaults.PageNumber = FallbackPageNumber
	}
	if c.Defaults.PageSize == 0 {
		c.Defaults.PageSize = FallbackPageSize
	}
	if c.Sliding.WindowSize == 0 {
		c.Sliding.WindowSize = DefaultWindowSize
	}
}

// Validate checks that every value is at least 1.
func (c *Config) Validate() error {
	if err := checkPositive("pageNumber", c.Defaults.PageNumber); err != nil {
		return err
	}
	if err := checkPositive("pageSize", c.Defaults.PageSize); err != nil {
		return err
	}
	return checkPositive("windowSize", c.Sliding.WindowSize)
}

// Apply validates c and writes it into r: the defaults, and the window size
// of r's shared sliding generator.
func (c *Config) Apply(r *Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := r.SetDefaults(c.Defaults); err != nil {
		return err
	}
	return r.Sliding().SetWindowSize(c.Sliding.WindowSize)
}
