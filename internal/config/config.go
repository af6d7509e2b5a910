/*
Copyright (c) the dlt authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the on-disk configuration for the dltscan CLI.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Output formats the scan subcommand supports.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ScanConfig describes how dltscan should read and report on a file.
type ScanConfig struct {
	// Format selects the report rendering.
	Format string `yaml:"format"`
	// FollowResync, when true, keeps scanning past recoverable errors
	// instead of stopping at the first one.
	FollowResync bool `yaml:"follow_resync"`
	// MetricsPort, when non-zero, starts a Prometheus exporter on this
	// port instead of exiting once the file is fully scanned.
	MetricsPort int `yaml:"metrics_port"`
	// MetricsIntervalSeconds is how often, in seconds, the exporter re-scrapes
	// its Stats snapshot.
	MetricsIntervalSeconds int `yaml:"metrics_interval_seconds"`
}

// DefaultConfig returns the baseline configuration used when no config
// file is given.
func DefaultConfig() *ScanConfig {
	return &ScanConfig{
		Format:                 FormatText,
		FollowResync:           true,
		MetricsIntervalSeconds: 15,
	}
}

// Validate reports whether c is internally consistent.
func (c *ScanConfig) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("format must be either %q or %q", FormatText, FormatJSON)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("metrics_port must be between 0 and 65535")
	}
	if c.MetricsIntervalSeconds <= 0 {
		return fmt.Errorf("metrics_interval_seconds must be positive")
	}
	return nil
}

// ReadConfig reads and validates a ScanConfig from path, starting from
// DefaultConfig and overlaying whatever the file specifies.
func ReadConfig(path string) (*ScanConfig, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}
