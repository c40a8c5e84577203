package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type config struct {
	JPEGQuality int  `yaml:"jpeg_quality"`
	Verbose     bool `yaml:"verbose"`
}

// loadConfig reads the YAML file at path. An empty path yields the
// zero config.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse configuration file '%s': %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.JPEGQuality < 0 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality %d out of range 1-100", c.JPEGQuality)
	}
	return nil
}
