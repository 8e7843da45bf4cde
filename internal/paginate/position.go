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

// Skip translates a logical offset into a cursor position by walking
// page-info-only responses forward from the start of the list. Only
// pagination metadata is requested, so no node payloads are transferred and
// discarded along the way.
//
// An offset of zero resolves to the start-of-list position without any
// network call. Otherwise each step covers min(remaining, MaxSkipPageSize)
// entries after the current cursor. The walk never fails: a request error or
// a response without pagination metadata ends it early and the last known
// position is returned. An exhausted list (hasNextPage=false before the
// offset is consumed) is likewise a legitimate terminal state.
func Skip(ctx context.Context, offset int, fetch InfoFunc, log zerolog.Logger) Position {
	if offset <= 0 {
		return Start()
	}

	info := PageInfo{HasNextPage: true}
	remaining := offset

	for remaining > 0 && info.HasNextPage {
		size := remaining
		if size > MaxSkipPageSize {
			size = MaxSkipPageSize
		}

		next, err := fetch(ctx, size, info.EndCursor)
		if err != nil {
			log.Warn().Err(err).
				Int("offset", offset).
				Int("remaining", remaining).
				Msg("position walk stopped early")
			return At(info)
		}
		if next == nil {
			log.Debug().
				Int("offset", offset).
				Int("remaining", remaining).
				Msg("position walk got no page info")
			return At(info)
		}

		info = *next
		remaining -= size
	}

	log.Debug().
		Int("offset", offset).
		Bool("has_next_page", info.HasNextPage).
		Msg("position resolved")
	return At(info)
}
