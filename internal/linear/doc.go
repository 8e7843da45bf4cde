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

// Package linear provides a client for interacting with Linear's GraphQL API
// to read and update issue data. It abstracts the complexity of GraphQL
// queries and exposes a small interface for paged issue listings, full-text
// issue search, team lookup, and workflow state transitions.
//
// The package includes:
//   - A Client interface covering paged and single-shot operations
//   - A GraphQL implementation using the shurcooL/graphql library
//   - Mock client for testing
//   - Type definitions for issue, team, and workflow state data
//
// Paged operations come in two flavors per query shape: a node-bearing call
// returning an IssuePage, and a page-info-only call used to advance position
// cheaply without transferring issue payloads. Each call issues exactly one
// network round trip; the client never retries.
//
// Basic usage:
//
//	client := linear.NewGraphQLClient("lin_api_...", "https://api.linear.app/graphql")
//	page, err := client.FetchIssues(ctx, teamID, linear.FetchOptions{PageSize: 50})
//	if err != nil {
//	    // Handle error
//	}
//	for _, issue := range page.Nodes {
//	    // Process issue
//	}
package linear
