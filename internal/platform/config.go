package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration for the jot CLI,
// typically at ~/.config/jot/config.yaml.
type Config struct {
	// Path is the data directory holding the durable slot.
	Path string `yaml:"path"`
	// QuietPeriodMS overrides the write-coalescing delay, in
	// milliseconds. Zero keeps the default.
	QuietPeriodMS int  `yaml:"quiet_period_ms"`
	Verbose       bool `yaml:"verbose"`
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jot", "config.yaml")
}

// DefaultDataPath returns the conventional data directory.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".jot")
}

// LoadConfig reads the config file at path. A missing file yields the
// zero Config; a file that exists but does not parse is an error, since
// silently ignoring explicit configuration would surprise the user.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
