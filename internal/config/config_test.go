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
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Linear.Endpoint != "https://api.linear.app/graphql" {
		t.Errorf("endpoint = %q, want production Linear endpoint", cfg.Linear.Endpoint)
	}
	if cfg.Linear.APIKeyEnv != "LINEAR_API_KEY" {
		t.Errorf("api key env = %q, want LINEAR_API_KEY", cfg.Linear.APIKeyEnv)
	}
	if cfg.Defaults.Limit != 50 {
		t.Errorf("default limit = %d, want 50", cfg.Defaults.Limit)
	}
	if got := cfg.Timeout(); got != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", got)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `linear:
  endpoint: https://linear.example.com/graphql
  api_key_env: MY_LINEAR_KEY
defaults:
  request_timeout: 90s
  limit: 25
  log_level: debug
teams:
  ENG:
    id: team-uuid-1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile: %v", err)
	}

	if cfg.Linear.Endpoint != "https://linear.example.com/graphql" {
		t.Errorf("endpoint = %q", cfg.Linear.Endpoint)
	}
	if cfg.Linear.APIKeyEnv != "MY_LINEAR_KEY" {
		t.Errorf("api key env = %q", cfg.Linear.APIKeyEnv)
	}
	if got := cfg.Timeout(); got != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", got)
	}
	if cfg.Defaults.Limit != 25 {
		t.Errorf("limit = %d, want 25", cfg.Defaults.Limit)
	}

	id, ok := cfg.TeamID("ENG")
	if !ok || id != "team-uuid-1" {
		t.Errorf("TeamID(ENG) = %q, %v", id, ok)
	}
	if _, ok := cfg.TeamID("OPS"); ok {
		t.Error("TeamID(OPS) should not resolve")
	}
}

func TestLoadConfigFromFile_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("defaults:\n  limit: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile: %v", err)
	}
	if cfg.Defaults.Limit != 10 {
		t.Errorf("limit = %d, want 10", cfg.Defaults.Limit)
	}
	if cfg.Linear.Endpoint != "https://api.linear.app/graphql" {
		t.Errorf("endpoint should keep default, got %q", cfg.Linear.Endpoint)
	}
}

func TestLoadConfigFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed yaml",
			content: "linear: [not a map",
		},
		{
			name:    "bad endpoint",
			content: "linear:\n  endpoint: not-a-url\n",
		},
		{
			name:    "bad log level",
			content: "defaults:\n  log_level: chatty\n",
		},
		{
			name:    "limit over page ceiling",
			content: "defaults:\n  limit: 500\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfigFromFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envEndpoint, "https://override.example.com/graphql")
	t.Setenv(envTimeout, "5s")
	t.Setenv(envLogLevel, "WARN")
	t.Setenv(envLimit, "7")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Linear.Endpoint != "https://override.example.com/graphql" {
		t.Errorf("endpoint = %q", cfg.Linear.Endpoint)
	}
	if got := cfg.Timeout(); got != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", got)
	}
	if cfg.Defaults.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Defaults.LogLevel)
	}
	if cfg.Defaults.Limit != 7 {
		t.Errorf("limit = %d, want 7", cfg.Defaults.Limit)
	}
}

func TestEnvOverrides_IgnoresBadLimit(t *testing.T) {
	t.Setenv(envLimit, "oops")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Defaults.Limit != 50 {
		t.Errorf("limit = %d, want default 50", cfg.Defaults.Limit)
	}
}

func TestTimeout_FallsBackOnGarbage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.RequestTimeout = "soon"
	if got := cfg.Timeout(); got != 30*time.Second {
		t.Errorf("timeout = %v, want fallback 30s", got)
	}
}
