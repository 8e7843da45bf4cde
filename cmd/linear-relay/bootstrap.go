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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sirseerhq/linear-relay/internal/config"
	"github.com/sirseerhq/linear-relay/internal/linear"
	"github.com/sirseerhq/linear-relay/internal/logging"
	"github.com/sirseerhq/linear-relay/internal/tasks"
)

// app holds everything a command run needs: config, logger, and the
// resolver wired to a live Linear client.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	resolver *tasks.Resolver
	client   linear.Client
}

// newApp loads config, resolves credentials, and builds the client stack
// for one command invocation.
func newApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	apiKeyFlag, _ := cmd.Flags().GetString("api-key")
	logLevelFlag, _ := cmd.Flags().GetString("log-level")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Defaults.LogLevel
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	log := logging.NewStderr(level)

	apiKey := getAPIKey(apiKeyFlag, cfg.Linear.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("Linear API key not found. Set %s or use --api-key flag", cfg.Linear.APIKeyEnv)
	}

	client := linear.NewGraphQLClient(apiKey, cfg.Linear.Endpoint)

	return &app{
		cfg:      cfg,
		log:      log,
		resolver: tasks.NewResolver(client, log),
		client:   client,
	}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfigFromFile(path)
	}
	return config.LoadConfig()
}

// getAPIKey returns the API key from the flag or the configured
// environment variable, in that order.
func getAPIKey(flagKey, envName string) string {
	if flagKey != "" {
		return flagKey
	}
	return os.Getenv(envName)
}

// teamID resolves a team key to its backend identifier, preferring a
// pinned ID from config over an API round trip.
func (a *app) teamID(ctx context.Context, teamKey string) (string, error) {
	if id, ok := a.cfg.TeamID(teamKey); ok {
		a.log.Debug().Str("team", teamKey).Str("id", id).Msg("using pinned team id from config")
		return id, nil
	}
	return a.resolver.TeamIDByKey(ctx, teamKey)
}
