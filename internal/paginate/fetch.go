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

package paginate

import (
	"context"

	"github.com/rs/zerolog"
)

// Collect fetches nodes forward from the given position until limit nodes
// have been accumulated or pagination ends. Each request covers
// min(remaining, MaxBatchSize) entries after the current cursor.
//
// Collect never fails. A request error or a response without a usable page
// ends the loop and the nodes gathered so far are returned. Backend-reported
// error messages attached to an otherwise usable page are logged and the
// loop continues. Nodes are appended in the order the backend returned them;
// no local reordering happens.
func Collect[T any](ctx context.Context, limit int, from Position, fetch PageFunc[T], log zerolog.Logger) []T {
	info := PageInfo{HasNextPage: true}
	if resolved, ok := from.Info(); ok {
		info = resolved
	}

	items := make([]T, 0)
	remaining := limit

	for remaining > 0 && info.HasNextPage {
		size := remaining
		if size > MaxBatchSize {
			size = MaxBatchSize
		}

		page, err := fetch(ctx, size, info.EndCursor)
		if err != nil {
			log.Warn().Err(err).
				Int("collected", len(items)).
				Int("remaining", remaining).
				Msg("fetch loop stopped early")
			break
		}
		if page == nil {
			log.Debug().
				Int("collected", len(items)).
				Msg("fetch loop got no page")
			break
		}

		for _, msg := range page.Errs {
			log.Warn().
				Str("backend_error", msg).
				Int("collected", len(items)).
				Msg("backend reported error for page")
		}

		nodes := page.Nodes
		if len(nodes) == 0 {
			// A node-less page cannot make progress; treat it as end-of-data.
			break
		}
		if len(nodes) > remaining {
			nodes = nodes[:remaining]
		}

		items = append(items, nodes...)
		info = page.Info
		remaining -= len(nodes)
	}

	return items
}
