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

	"github.com/sirseerhq/linear-relay/internal/output"
	"github.com/sirseerhq/linear-relay/internal/tasks"
)

// newIssuesCommand builds the issues command, the main entry point for
// window resolution.
func newIssuesCommand() *cobra.Command {
	var (
		query         string
		offset        int
		limit         int
		includeClosed bool
		outputFile    string
	)

	cmd := &cobra.Command{
		Use:   "issues <team-key>",
		Short: "Resolve a window of issues for a team",
		Long: `Resolve a window of issues for a team and output them in NDJSON format.

The team is identified by its key, for example ENG or OPS. The window is
an offset and a limit over the team's issue list, newest first. With
--query, the window is taken over the matching issues instead.

Window resolution degrades rather than fails: if the backend errors
partway through, the issues fetched so far are still written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout())
			defer cancel()

			if limit == 0 {
				limit = a.cfg.Defaults.Limit
			}
			return runIssues(ctx, a, args[0], tasks.ResolveRequest{
				Query:         query,
				Offset:        offset,
				Limit:         limit,
				IncludeClosed: includeClosed,
			}, outputFile)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search term; switches from listing to search")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of issues to skip before the window")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum issues to return (default from config)")
	cmd.Flags().BoolVar(&includeClosed, "include-closed", false, "Include closed issues (accepted, not yet applied)")
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")

	return cmd
}

func runIssues(ctx context.Context, a *app, teamKey string, req tasks.ResolveRequest, outputFile string) error {
	id, err := a.teamID(ctx, teamKey)
	if err != nil {
		return err
	}
	req.TeamID = id

	var writer output.IssueWriter
	if outputFile == "" {
		writer = output.NewWriter(os.Stdout)
	} else {
		fileWriter, fErr := output.NewFileWriter(outputFile)
		if fErr != nil {
			return fErr
		}
		writer = fileWriter
	}
	defer writer.Close()

	issues := a.resolver.ResolveItems(ctx, req)

	for _, issue := range issues {
		if err := writer.Write(issue); err != nil {
			return fmt.Errorf("failed to write issue: %w", err)
		}
	}

	if len(issues) < req.Limit {
		fmt.Fprintf(os.Stderr, "Resolved %d of %d requested issues from %s\n", len(issues), req.Limit, teamKey)
	} else {
		fmt.Fprintf(os.Stderr, "Resolved %d issues from %s\n", len(issues), teamKey)
	}
	return nil
}
