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

	"github.com/sirseerhq/linear-relay/internal/paginate"
)

// Client defines the interface for interacting with Linear's API.
// This interface allows for easy mocking in tests.
//
// The paged methods (FetchIssues, SearchIssues and their page-info-only
// counterparts) may return a page together with recorded backend error
// messages; a nil page with a nil error means the response carried no usable
// payload and pagination should stop. The single-shot methods escalate every
// anomaly to a returned error.
type Client interface {
	// FetchIssues retrieves a page of issues for the given team in the
	// backend's natural (update-time) order.
	FetchIssues(ctx context.Context, teamID string, opts FetchOptions) (*IssuePage, error)

	// SearchIssues retrieves a page of issues for the given team matching a
	// free-text term, in the backend's relevance order.
	SearchIssues(ctx context.Context, teamID, term string, opts FetchOptions) (*IssuePage, error)

	// FetchIssuePageInfo retrieves only the pagination marker for a page of
	// the team's issue listing, skipping node payloads.
	FetchIssuePageInfo(ctx context.Context, teamID string, opts FetchOptions) (*paginate.PageInfo, error)

	// SearchIssuePageInfo retrieves only the pagination marker for a page of
	// the team's search results, skipping node payloads.
	SearchIssuePageInfo(ctx context.Context, teamID, term string, opts FetchOptions) (*paginate.PageInfo, error)

	// Teams lists the teams accessible to the configured API key.
	Teams(ctx context.Context) ([]Team, error)

	// TeamIDByKey resolves a team key (e.g. "ENG") to its backend identifier.
	TeamIDByKey(ctx context.Context, key string) (string, error)

	// AvailableStates lists the deduplicated workflow states an issue can be
	// moved to.
	AvailableStates(ctx context.Context, issueID string) ([]WorkflowState, error)

	// ApplyState moves an issue to the given workflow state.
	ApplyState(ctx context.Context, issueID, stateID string) error
}
