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

package tasks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	relayerrors "github.com/sirseerhq/linear-relay/internal/errors"
	"github.com/sirseerhq/linear-relay/internal/linear"
	"github.com/sirseerhq/linear-relay/internal/paginate"
)

// ResolveRequest describes one windowed issue request. It is transient and
// only lives for the duration of a single ResolveItems call.
type ResolveRequest struct {
	// TeamID is the backend team identifier (not the human-facing key).
	TeamID string

	// Query optionally filters issues by free text. Blank means the plain
	// team listing.
	Query string

	// Offset is the number of leading issues to skip.
	Offset int

	// Limit is the maximum number of issues to return.
	Limit int

	// IncludeClosed is accepted for host compatibility but not yet applied
	// to filtering.
	IncludeClosed bool
}

// Resolver answers windowed issue requests and passes through the
// single-shot team and workflow state operations. A Resolver holds no
// mutable state and is safe for concurrent use by independent callers.
type Resolver struct {
	client linear.Client
	log    zerolog.Logger
}

// NewResolver creates a Resolver on top of the given Linear client.
func NewResolver(client linear.Client, logger zerolog.Logger) *Resolver {
	return &Resolver{
		client: client,
		log:    logger.With().Str("component", "resolver").Logger(),
	}
}

// ResolveItems materializes the requested issue window. It resolves the
// starting position first when the offset is positive, then fetches batches
// forward until the limit is met or the list ends.
//
// ResolveItems never fails: validation problems, backend trouble mid-window,
// panics, and cancellation of the calling context are all logged with full
// context and degrade to an empty (or partial) list. Callers observe only
// "zero or more issues". The fetch work runs on a background goroutine;
// ResolveItems blocks until it completes or the context is done.
func (r *Resolver) ResolveItems(ctx context.Context, req ResolveRequest) []linear.Issue {
	done := make(chan []linear.Issue, 1)

	go func() {
		defer func() {
			if v := recover(); v != nil {
				r.log.Error().
					Interface("panic", v).
					Str("team_id", req.TeamID).
					Int("offset", req.Offset).
					Int("limit", req.Limit).
					Msg("issue resolution panicked")
				done <- nil
			}
		}()
		done <- r.resolve(ctx, req)
	}()

	select {
	case items := <-done:
		if items == nil {
			return []linear.Issue{}
		}
		return items
	case <-ctx.Done():
		r.log.Error().Err(ctx.Err()).
			Str("team_id", req.TeamID).
			Str("query", req.Query).
			Int("offset", req.Offset).
			Int("limit", req.Limit).
			Msg("issue resolution interrupted")
		return []linear.Issue{}
	}
}

func (r *Resolver) resolve(ctx context.Context, req ResolveRequest) []linear.Issue {
	if req.Offset < 0 || req.Limit < 0 {
		r.log.Error().
			Str("team_id", req.TeamID).
			Int("offset", req.Offset).
			Int("limit", req.Limit).
			Msg("rejecting resolve request with negative window")
		return nil
	}
	if req.Limit == 0 {
		// Nothing to fetch; skip position resolution entirely.
		return []linear.Issue{}
	}

	queries := selectQueries(r.client, req.TeamID, req.Query)

	position := paginate.Skip(ctx, req.Offset, queries.info, r.log)
	items := paginate.Collect(ctx, req.Limit, position, queries.items, r.log)

	r.log.Debug().
		Str("team_id", req.TeamID).
		Int("offset", req.Offset).
		Int("limit", req.Limit).
		Int("resolved", len(items)).
		Msg("issue window resolved")
	return items
}

// TeamIDByKey resolves a team key to its backend identifier.
func (r *Resolver) TeamIDByKey(ctx context.Context, key string) (string, error) {
	return r.client.TeamIDByKey(ctx, key)
}

// VerifyConnection checks that the configured credentials can reach the
// workspace and that the given team key exists. A workspace without teams
// and a missing key are both failures.
func (r *Resolver) VerifyConnection(ctx context.Context, teamKey string) error {
	teams, err := r.client.Teams(ctx)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		return relayerrors.ErrNoTeams
	}
	for _, team := range teams {
		if team.Key == teamKey {
			return nil
		}
	}
	return fmt.Errorf("team '%s': %w", teamKey, relayerrors.ErrTeamNotFound)
}

// AvailableStates lists the deduplicated workflow states an issue can move to.
func (r *Resolver) AvailableStates(ctx context.Context, issueID string) ([]linear.WorkflowState, error) {
	return r.client.AvailableStates(ctx, issueID)
}

// ApplyState moves an issue to the given workflow state.
func (r *Resolver) ApplyState(ctx context.Context, issueID, stateID string) error {
	return r.client.ApplyState(ctx, issueID, stateID)
}
