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

package linear

import (
	"context"
	"fmt"

	"github.com/shurcooL/graphql"
	relayerrors "github.com/sirseerhq/linear-relay/internal/errors"
)

// AvailableStates lists the workflow states the given issue can be moved to.
// The result is deduplicated by state ID, preserving first-seen order.
// Single round trip; backend-reported errors and a missing issue both fail
// the call.
func (c *GraphQLClient) AvailableStates(ctx context.Context, issueID string) ([]WorkflowState, error) {
	var query struct {
		Issue *struct {
			Team struct {
				States struct {
					Nodes []struct {
						ID   graphql.String
						Name graphql.String
					}
				} `graphql:"states"`
			} `graphql:"team"`
		} `graphql:"issue(id: $id)"`
	}

	variables := map[string]interface{}{
		"id": graphql.String(issueID),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, issueID, relayerrors.ErrIssueNotFound)
	}
	if query.Issue == nil {
		return nil, fmt.Errorf("issue '%s': %w", issueID, relayerrors.ErrIssueNotFound)
	}

	seen := make(map[string]bool, len(query.Issue.Team.States.Nodes))
	states := make([]WorkflowState, 0, len(query.Issue.Team.States.Nodes))
	for _, node := range query.Issue.Team.States.Nodes {
		id := string(node.ID)
		if seen[id] {
			continue
		}
		seen[id] = true
		states = append(states, WorkflowState{ID: id, Name: string(node.Name)})
	}

	return states, nil
}

// ApplyState moves an issue to the given workflow state. Single round trip
// mutation; the call fails when the backend reports errors or when its
// success flag is not true.
func (c *GraphQLClient) ApplyState(ctx context.Context, issueID, stateID string) error {
	var mutation struct {
		IssueUpdate struct {
			Success graphql.Boolean
		} `graphql:"issueUpdate(id: $id, input: {stateId: $state})"`
	}

	variables := map[string]interface{}{
		"id":    graphql.String(issueID),
		"state": graphql.String(stateID),
	}

	if err := c.client.Mutate(ctx, &mutation, variables); err != nil {
		return c.mapError(err, issueID, relayerrors.ErrIssueNotFound)
	}

	if !bool(mutation.IssueUpdate.Success) {
		return fmt.Errorf("issue '%s' to state '%s': %w", issueID, stateID, relayerrors.ErrStateChangeRejected)
	}

	return nil
}
