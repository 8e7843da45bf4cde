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
	"errors"
	"fmt"
	"os"

	relayerrors "github.com/sirseerhq/linear-relay/internal/errors"
	"github.com/sirseerhq/linear-relay/pkg/version"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "linear-relay",
		Short: "Resolve issue windows from a Linear workspace",
		Long: `linear-relay fetches issues from a Linear workspace through its
cursor-based GraphQL API and streams them as NDJSON. Callers ask for an
offset and a limit; the tool handles cursor resolution and batching.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.PersistentFlags().String("config", "", "Config file path (default: .linear-relay.yaml, ~/.linear-relay/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "Linear API key (overrides the configured environment variable)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newIssuesCommand())
	rootCmd.AddCommand(newTeamsCommand())
	rootCmd.AddCommand(newStatesCommand())
	rootCmd.AddCommand(newMoveCommand())
	rootCmd.AddCommand(newVerifyCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, relayerrors.ErrInvalidAPIKey) ||
		errors.Is(err, relayerrors.ErrTeamNotFound) ||
		errors.Is(err, relayerrors.ErrNoTeams) ||
		errors.Is(err, relayerrors.ErrIssueNotFound) ||
		errors.Is(err, relayerrors.ErrRateLimit) {
		return 2 // Authentication/entity errors
	}

	if errors.Is(err, relayerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
