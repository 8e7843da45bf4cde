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
	"time"

	"github.com/sirseerhq/linear-relay/internal/paginate"
)

// Issue is a short, read-only issue record as returned by the Linear API.
// Instances are never mutated locally; ownership transfers to the caller.
type Issue struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Title      string    `json:"title"`
	State      string    `json:"state,omitempty"`
	Assignee   string    `json:"assignee,omitempty"`
	Priority   int       `json:"priority,omitempty"`
	URL        string    `json:"url,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IssuePage is one page of issues from a paged query, carrying the trailing
// pagination marker and any backend-reported error messages that accompanied
// a still-usable response.
type IssuePage = paginate.Page[Issue]

// Team identifies a Linear team. Key is the short human-facing prefix
// (e.g. "ENG"), ID the backend identifier used in queries.
type Team struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// WorkflowState is one allowed issue state, as used for state transitions.
type WorkflowState struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FetchOptions configures a single paged request.
type FetchOptions struct {
	// PageSize controls how many issues to cover per page.
	// Defaults to 50 if not specified. Node-bearing requests are capped at
	// 50, page-info-only requests at 250.
	PageSize int

	// After is the cursor for pagination.
	// Empty string fetches from the beginning.
	// Use the page's EndCursor from a previous response for the next page.
	After string
}

// Default values for fetch operations
const (
	defaultPageSize = 50
)
