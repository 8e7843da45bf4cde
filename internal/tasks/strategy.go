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
	"strings"

	"github.com/sirseerhq/linear-relay/internal/linear"
	"github.com/sirseerhq/linear-relay/internal/paginate"
)

// pageQueries binds the two phases of a resolution call to one backend
// operation: a page-info-only query for position resolution and a
// node-bearing query for the batched fetch. Both are bound to the same
// listing or search shape, never a mix.
type pageQueries struct {
	info  paginate.InfoFunc
	items paginate.PageFunc[linear.Issue]
}

// selectQueries picks the backend operation for a resolution call. A blank
// filter selects the plain team listing; anything else selects full-text
// search. This is pure dispatch, resolved once per call.
func selectQueries(client linear.Client, teamID, query string) pageQueries {
	term := strings.TrimSpace(query)
	if term == "" {
		return pageQueries{
			info: func(ctx context.Context, pageSize int, after string) (*paginate.PageInfo, error) {
				return client.FetchIssuePageInfo(ctx, teamID, linear.FetchOptions{PageSize: pageSize, After: after})
			},
			items: func(ctx context.Context, pageSize int, after string) (*linear.IssuePage, error) {
				return client.FetchIssues(ctx, teamID, linear.FetchOptions{PageSize: pageSize, After: after})
			},
		}
	}

	return pageQueries{
		info: func(ctx context.Context, pageSize int, after string) (*paginate.PageInfo, error) {
			return client.SearchIssuePageInfo(ctx, teamID, term, linear.FetchOptions{PageSize: pageSize, After: after})
		},
		items: func(ctx context.Context, pageSize int, after string) (*linear.IssuePage, error) {
			return client.SearchIssues(ctx, teamID, term, linear.FetchOptions{PageSize: pageSize, After: after})
		},
	}
}
