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

	"github.com/spf13/cobra"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <team-key>",
		Short: "Check credentials and team access",
		Long: `Check that the configured API key can reach the workspace and that
the given team exists. Exits non-zero if the key is rejected, the
workspace has no teams, or the team key does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout())
			defer cancel()

			return runVerify(ctx, a, args[0])
		},
	}
}

func runVerify(ctx context.Context, a *app, teamKey string) error {
	if err := a.resolver.VerifyConnection(ctx, teamKey); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Connection verified: team %s is reachable\n", teamKey)
	return nil
}
