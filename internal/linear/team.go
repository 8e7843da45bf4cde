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

type teamNode struct {
	ID   graphql.String
	Key  graphql.String
	Name graphql.String
}

// Teams lists all teams accessible to the configured API key.
// Single round trip; any backend-reported error fails the call.
func (c *GraphQLClient) Teams(ctx context.Context) ([]Team, error) {
	var query struct {
		Teams struct {
			Nodes []teamNode
		} `graphql:"teams"`
	}

	if err := c.client.Query(ctx, &query, nil); err != nil {
		return nil, c.mapError(err, "teams", relayerrors.ErrNoTeams)
	}

	teams := make([]Team, 0, len(query.Teams.Nodes))
	for _, node := range query.Teams.Nodes {
		teams = append(teams, Team{
			ID:   string(node.ID),
			Key:  string(node.Key),
			Name: string(node.Name),
		})
	}

	return teams, nil
}

// TeamIDByKey resolves a team key (e.g. "ENG") to its backend identifier.
// Single round trip; backend-reported errors and an absent match both fail
// the call.
func (c *GraphQLClient) TeamIDByKey(ctx context.Context, key string) (string, error) {
	var query struct {
		Teams struct {
			Nodes []teamNode
		} `graphql:"teams(filter: {key: {eq: $key}})"`
	}

	variables := map[string]interface{}{
		"key": graphql.String(key),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return "", c.mapError(err, key, relayerrors.ErrTeamNotFound)
	}

	for _, node := range query.Teams.Nodes {
		if string(node.Key) == key {
			return string(node.ID), nil
		}
	}

	return "", fmt.Errorf("team '%s': %w", key, relayerrors.ErrTeamNotFound)
}
