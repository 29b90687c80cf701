// Package config loads driver.Config from a YAML file, mirroring the
// teacher's gopkg.in/yaml.v3 usage for its own config structures.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sqldef/annadriver/driver"
)

// File is the on-disk shape of a driver config file.
type File struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// Load reads and parses a YAML config file into a driver.Config.
func Load(path string) (driver.Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return driver.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return driver.Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if f.URL == "" {
		return driver.Config{}, fmt.Errorf("config: %s: url is required", path)
	}
	if f.Subject == "" {
		return driver.Config{}, fmt.Errorf("config: %s: subject is required", path)
	}

	return driver.Config{URL: f.URL, Subject: f.Subject}, nil
}
