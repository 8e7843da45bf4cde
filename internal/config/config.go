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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized as overrides. They take precedence over
// file values but not over explicit command-line flags.
const (
	envEndpoint  = "LINEAR_RELAY_ENDPOINT"
	envAPIKeyEnv = "LINEAR_RELAY_API_KEY_ENV"
	envTimeout   = "LINEAR_RELAY_TIMEOUT"
	envLogLevel  = "LINEAR_RELAY_LOG_LEVEL"
	envLimit     = "LINEAR_RELAY_LIMIT"
)

// LoadConfig loads configuration from the standard locations, applying
// precedence rules: defaults, then the first config file found, then
// environment variable overrides.
//
// Config file locations (first found wins):
//  1. ./.linear-relay.yaml (current directory)
//  2. ~/.linear-relay/config.yaml (user home directory)
//
// A missing config file is not an error; defaults apply. A malformed or
// invalid config file is.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFromFile loads configuration from an explicit path, bypassing
// the search order. Used when --config is given on the command line.
func LoadConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadConfigFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	applyEnvOverrides(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() (string, error) {
	local := ".linear-relay.yaml"
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory is not fatal; fall back to defaults.
		return "", nil
	}
	user := filepath.Join(home, ".linear-relay", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}
	return "", nil
}

func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envEndpoint); v != "" {
		cfg.Linear.Endpoint = v
	}
	if v := os.Getenv(envAPIKeyEnv); v != "" {
		cfg.Linear.APIKeyEnv = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		cfg.Defaults.RequestTimeout = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Defaults.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(envLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Defaults.Limit = n
		}
	}
}

func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("invalid config: field %s failed %q validation", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
