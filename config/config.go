// Package config provides the configuration of the whole application,
// loaded from an optional YAML file with sensible defaults.
package config

import (
	"fmt"
	"os"

	"github.com/dnsvet/dnsvet/log"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v2"
)

// Config is the top level configuration
type Config struct {
	Log    log.Config   `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
	Report ReportConfig `yaml:"report"`
}

// ReportConfig configures report generation defaults, flags take precedence
type ReportConfig struct {
	// Pretty enables indented document output
	Pretty bool `yaml:"pretty" default:"false"`

	// MetricsFile is an optional path, run counters are written there in
	// prometheus text exposition format (textfile collector pattern)
	MetricsFile string `yaml:"metricsFile"`
}

// LoadConfig creates new config from YAML file or uses defaults if the file
// doesn't exist and is not required
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := Config{}
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("can't apply config defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return &cfg, nil
		}

		return nil, fmt.Errorf("can't read config file '%s': %w", path, err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("can't parse config file '%s': %w", path, err)
	}

	return &cfg, nil
}
