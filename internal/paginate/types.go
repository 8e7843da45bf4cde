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

import "context"

// Page size limits imposed by the Linear API. The two caps are independent:
// node-bearing requests are limited to 50 entries, while page-info-only
// requests may cover up to 250 entries per round trip.
const (
	// MaxBatchSize is the largest page size for requests that return nodes.
	MaxBatchSize = 50

	// MaxSkipPageSize is the largest page size for page-info-only requests
	// used during position resolution.
	MaxSkipPageSize = 250
)

// PageInfo is the pagination marker carried by every paged query response.
// An empty EndCursor means the backend supplied no continuation token.
type PageInfo struct {
	HasNextPage bool
	EndCursor   string
}

// Page is one page of nodes together with its trailing pagination marker.
// Errs carries backend-reported error messages that accompanied an otherwise
// usable response; they are recorded by the fetch loop without aborting it.
type Page[T any] struct {
	Nodes []T
	Info  PageInfo
	Errs  []string
}

// InfoFunc requests pagination metadata for a page of the given size starting
// after the given cursor. An empty cursor means the start of the list.
// A nil PageInfo with a nil error means the response carried no usable
// pagination payload.
type InfoFunc func(ctx context.Context, pageSize int, after string) (*PageInfo, error)

// PageFunc requests a page of nodes of the given size starting after the
// given cursor. An empty cursor means the start of the list.
type PageFunc[T any] func(ctx context.Context, pageSize int, after string) (*Page[T], error)

type positionKind int

const (
	positionUnresolved positionKind = iota
	positionStart
	positionAt
)

// Position is the explicit three-state outcome of position resolution:
// unresolved (zero value), start-of-list, or resolved at a concrete PageInfo.
// A first page can legitimately carry hasNextPage=true with no cursor, so
// "start of list" must be its own state rather than a recognizable PageInfo
// value.
type Position struct {
	kind positionKind
	info PageInfo
}

// Start returns the position meaning "fetch from the beginning of the list".
func Start() Position {
	return Position{kind: positionStart}
}

// At returns a position resolved at the given pagination marker.
func At(info PageInfo) Position {
	return Position{kind: positionAt, info: info}
}

// IsStart reports whether the position is the start-of-list marker.
func (p Position) IsStart() bool {
	return p.kind == positionStart
}

// Resolved reports whether the position carries any resolution outcome.
func (p Position) Resolved() bool {
	return p.kind != positionUnresolved
}

// Info returns the resolved pagination marker. The second return value is
// false for the start-of-list marker and for an unresolved position.
func (p Position) Info() (PageInfo, bool) {
	if p.kind != positionAt {
		return PageInfo{}, false
	}
	return p.info, true
}
