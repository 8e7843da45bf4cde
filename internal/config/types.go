// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config types define the configuration structures used throughout
// linear-relay. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete configuration for linear-relay.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Linear   LinearConfig          `yaml:"linear" validate:"required"`
	Defaults DefaultsConfig        `yaml:"defaults"`
	Teams    map[string]TeamConfig `yaml:"teams"`
}

// LinearConfig contains Linear-specific settings including the GraphQL
// endpoint and the name of the environment variable holding the API key.
// Credential supply itself stays outside this package; only the lookup name
// is configured here.
type LinearConfig struct {
	Endpoint  string `yaml:"endpoint" validate:"required,url"`
	APIKeyEnv string `yaml:"api_key_env" validate:"required"`
}

// DefaultsConfig contains default settings that apply to all operations
// unless overridden by command-line flags.
type DefaultsConfig struct {
	// RequestTimeout bounds one whole CLI operation, parsed with
	// time.ParseDuration (e.g. "30s").
	RequestTimeout string `yaml:"request_timeout" validate:"omitempty"`

	// Limit is the default window size for the issues command.
	Limit int `yaml:"limit" validate:"gt=0,lte=250"`

	// LogLevel selects the minimum log severity.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// TeamConfig contains team-specific overrides. Pinning a team's backend ID
// here saves the key-resolution round trip for that team.
type TeamConfig struct {
	ID string `yaml:"id"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults target the production Linear API but can be
// overridden for testing against a different endpoint.
func DefaultConfig() *Config {
	return &Config{
		Linear: LinearConfig{
			Endpoint:  "https://api.linear.app/graphql",
			APIKeyEnv: "LINEAR_API_KEY",
		},
		Defaults: DefaultsConfig{
			RequestTimeout: "30s",
			Limit:          50,
			LogLevel:       "info",
		},
		Teams: make(map[string]TeamConfig),
	}
}

// Timeout returns the parsed request timeout, falling back to 30 seconds
// when the configured value is empty or malformed.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.Defaults.RequestTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// TeamID returns the pinned backend identifier for a team key, if one is
// configured.
func (c *Config) TeamID(key string) (string, bool) {
	team, ok := c.Teams[key]
	if !ok || team.ID == "" {
		return "", false
	}
	return team.ID, true
}

// String implements fmt.Stringer without leaking anything secret; the config
// never holds the API key itself, only the variable name.
func (c *Config) String() string {
	return fmt.Sprintf("endpoint=%s api_key_env=%s teams=%d", c.Linear.Endpoint, c.Linear.APIKeyEnv, len(c.Teams))
}
