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
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "states <issue-id>",
		Short: "List the workflow states an issue can move to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout())
			defer cancel()

			return runStates(ctx, a, args[0])
		},
	}
}

func runStates(ctx context.Context, a *app, issueID string) error {
	states, err := a.resolver.AvailableStates(ctx, issueID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID")
	for _, state := range states {
		fmt.Fprintf(w, "%s\t%s\n", state.Name, state.ID)
	}
	return w.Flush()
}
