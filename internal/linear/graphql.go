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
	"net/http"
	"time"

	"github.com/shurcooL/graphql"
	"github.com/sirseerhq/linear-relay/internal/apierror"
	relayerrors "github.com/sirseerhq/linear-relay/internal/errors"
	"github.com/sirseerhq/linear-relay/internal/paginate"
)

// GraphQLClient implements the Linear Client interface using the GraphQL API.
// It provides access to paged issue listings and search as well as the
// single-shot team and workflow state operations, with error classification
// and safety features like response size limits.
type GraphQLClient struct {
	client    *graphql.Client
	apiKey    string
	inspector apierror.Inspector
}

// NewGraphQLClient creates a new Linear GraphQL client with the provided API
// key and endpoint. The client is configured with:
//   - Authentication via the provided API key
//   - Custom GraphQL endpoint URL (the production endpoint is
//     https://api.linear.app/graphql)
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//   - Optimized connection pooling for API performance
func NewGraphQLClient(apiKey, endpoint string) *GraphQLClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			apiKey: apiKey,
			base:   transport,
		},
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		apiKey:    apiKey,
		inspector: apierror.NewErrorChainInspector(apierror.NewInspector()),
	}
}

// issueNode is the GraphQL selection shared by the listing and search query
// shapes. Both expose the same node structure through it.
type issueNode struct {
	ID         graphql.String
	Identifier graphql.String
	Title      graphql.String
	URL        graphql.String
	Priority   graphql.Float
	UpdatedAt  time.Time
	State      *struct {
		Name graphql.String
	} `graphql:"state"`
	Assignee *struct {
		Name graphql.String
	} `graphql:"assignee"`
}

// pageInfoNode mirrors the connection pagination marker.
type pageInfoNode struct {
	HasNextPage graphql.Boolean
	EndCursor   graphql.String
}

func (p pageInfoNode) toPageInfo() paginate.PageInfo {
	return paginate.PageInfo{
		HasNextPage: bool(p.HasNextPage),
		EndCursor:   string(p.EndCursor),
	}
}

func (n issueNode) toIssue() Issue {
	issue := Issue{
		ID:         string(n.ID),
		Identifier: string(n.Identifier),
		Title:      string(n.Title),
		URL:        string(n.URL),
		Priority:   int(n.Priority),
		UpdatedAt:  n.UpdatedAt,
	}
	if n.State != nil {
		issue.State = string(n.State.Name)
	}
	if n.Assignee != nil {
		issue.Assignee = string(n.Assignee.Name)
	}
	return issue
}

// FetchIssues fetches a page of issues for the given team, in the backend's
// update-time order. It supports cursor-based pagination via opts.After and
// caps the page size at the API's node-bearing limit.
//
// When the backend reports GraphQL-level errors alongside a usable payload,
// the page is returned with the messages recorded in Errs so the caller can
// decide whether to continue. A response without a team payload yields a nil
// page with a nil error, which pagination loops treat as end-of-data.
func (c *GraphQLClient) FetchIssues(ctx context.Context, teamID string, opts FetchOptions) (*IssuePage, error) {
	pageSize := normalizePageSize(opts.PageSize, paginate.MaxBatchSize)

	var query struct {
		Team *struct {
			Issues struct {
				Nodes    []issueNode
				PageInfo pageInfoNode
			} `graphql:"issues(first: $first, after: $after)"`
		} `graphql:"team(id: $teamId)"`
	}

	variables := map[string]interface{}{
		"teamId": graphql.String(teamID),
		"first":  graphql.Int(int32(pageSize)), // #nosec G115 - pageSize is capped at 50
		"after":  afterCursor(opts.After),
	}

	err := c.client.Query(ctx, &query, variables)
	if query.Team == nil {
		if err != nil {
			return nil, c.mapError(err, teamID, relayerrors.ErrTeamNotFound)
		}
		return nil, nil
	}

	page := &IssuePage{
		Nodes: make([]Issue, 0, len(query.Team.Issues.Nodes)),
		Info:  query.Team.Issues.PageInfo.toPageInfo(),
	}
	for _, node := range query.Team.Issues.Nodes {
		page.Nodes = append(page.Nodes, node.toIssue())
	}
	if err != nil {
		page.Errs = append(page.Errs, err.Error())
	}

	return page, nil
}

// SearchIssues fetches a page of issues for the given team matching a
// free-text term, in the backend's relevance order. Error handling matches
// FetchIssues.
func (c *GraphQLClient) SearchIssues(ctx context.Context, teamID, term string, opts FetchOptions) (*IssuePage, error) {
	pageSize := normalizePageSize(opts.PageSize, paginate.MaxBatchSize)

	var query struct {
		SearchIssues *struct {
			Nodes    []issueNode
			PageInfo pageInfoNode
		} `graphql:"searchIssues(term: $term, first: $first, after: $after, filter: {team: {id: {eq: $teamId}}})"`
	}

	variables := map[string]interface{}{
		"term":   graphql.String(term),
		"teamId": graphql.ID(teamID),
		"first":  graphql.Int(int32(pageSize)), // #nosec G115 - pageSize is capped at 50
		"after":  afterCursor(opts.After),
	}

	err := c.client.Query(ctx, &query, variables)
	if query.SearchIssues == nil {
		if err != nil {
			return nil, c.mapError(err, teamID, relayerrors.ErrTeamNotFound)
		}
		return nil, nil
	}

	page := &IssuePage{
		Nodes: make([]Issue, 0, len(query.SearchIssues.Nodes)),
		Info:  query.SearchIssues.PageInfo.toPageInfo(),
	}
	for _, node := range query.SearchIssues.Nodes {
		page.Nodes = append(page.Nodes, node.toIssue())
	}
	if err != nil {
		page.Errs = append(page.Errs, err.Error())
	}

	return page, nil
}

// FetchIssuePageInfo requests only the pagination marker for a page of the
// team's issue listing. No node payloads are transferred, which makes this
// the cheap building block for position resolution. A response without a
// usable payload yields (nil, nil).
func (c *GraphQLClient) FetchIssuePageInfo(ctx context.Context, teamID string, opts FetchOptions) (*paginate.PageInfo, error) {
	pageSize := normalizePageSize(opts.PageSize, paginate.MaxSkipPageSize)

	var query struct {
		Team *struct {
			Issues struct {
				PageInfo pageInfoNode
			} `graphql:"issues(first: $first, after: $after)"`
		} `graphql:"team(id: $teamId)"`
	}

	variables := map[string]interface{}{
		"teamId": graphql.String(teamID),
		"first":  graphql.Int(int32(pageSize)), // #nosec G115 - pageSize is capped at 250
		"after":  afterCursor(opts.After),
	}

	err := c.client.Query(ctx, &query, variables)
	if query.Team == nil {
		if err != nil {
			return nil, c.mapError(err, teamID, relayerrors.ErrTeamNotFound)
		}
		return nil, nil
	}

	info := query.Team.Issues.PageInfo.toPageInfo()
	return &info, nil
}

// SearchIssuePageInfo requests only the pagination marker for a page of the
// team's search results. Semantics match FetchIssuePageInfo.
func (c *GraphQLClient) SearchIssuePageInfo(ctx context.Context, teamID, term string, opts FetchOptions) (*paginate.PageInfo, error) {
	pageSize := normalizePageSize(opts.PageSize, paginate.MaxSkipPageSize)

	var query struct {
		SearchIssues *struct {
			PageInfo pageInfoNode
		} `graphql:"searchIssues(term: $term, first: $first, after: $after, filter: {team: {id: {eq: $teamId}}})"`
	}

	variables := map[string]interface{}{
		"term":   graphql.String(term),
		"teamId": graphql.ID(teamID),
		"first":  graphql.Int(int32(pageSize)), // #nosec G115 - pageSize is capped at 250
		"after":  afterCursor(opts.After),
	}

	err := c.client.Query(ctx, &query, variables)
	if query.SearchIssues == nil {
		if err != nil {
			return nil, c.mapError(err, teamID, relayerrors.ErrTeamNotFound)
		}
		return nil, nil
	}

	info := query.SearchIssues.PageInfo.toPageInfo()
	return &info, nil
}

// normalizePageSize applies the default and the given API cap.
func normalizePageSize(pageSize, maxSize int) int {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return pageSize
}

// afterCursor converts a cursor string to the nullable GraphQL variable
// value. An empty cursor is sent as null, never as an empty string.
func afterCursor(after string) *graphql.String {
	if after == "" {
		return nil
	}
	cursor := graphql.String(after)
	return &cursor
}

// mapError maps GraphQL errors to our domain errors with actionable messages.
// notFound is the sentinel to wrap when the backend reports a missing entity,
// which differs between team and issue operations.
func (c *GraphQLClient) mapError(err error, subject string, notFound error) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("linear API rate limit exceeded. Please wait before retrying: %w", relayerrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("linear API authentication failed. Please provide a valid API key via --api-key flag or LINEAR_API_KEY environment variable: %w", relayerrors.ErrInvalidAPIKey)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("'%s' not found. Please check the identifier and your access permissions: %w", subject, notFound)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to the Linear API. Please check your internet connection and try again: %w", relayerrors.ErrNetworkFailure)
	}

	// Generic error
	return fmt.Errorf("linear API request failed: %w", err)
}
