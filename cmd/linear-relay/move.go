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

func newMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <issue-id> <state-id>",
		Short: "Move an issue to a workflow state",
		Long: `Move an issue to a workflow state. Both arguments are backend
identifiers; use the states command to discover the state IDs an issue
can move to.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout())
			defer cancel()

			return runMove(ctx, a, args[0], args[1])
		},
	}
}

func runMove(ctx context.Context, a *app, issueID, stateID string) error {
	if err := a.resolver.ApplyState(ctx, issueID, stateID); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Issue %s moved\n", issueID)
	return nil
}
