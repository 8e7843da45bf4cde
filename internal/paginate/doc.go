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

// Package paginate implements offset-window resolution over forward-only
// cursor pagination. The backend only hands out opaque continuation cursors,
// so an arbitrary "limit items starting at offset" request has to be
// materialized in two phases: a cheap page-info-only walk that consumes the
// offset (Skip), followed by a batched node fetch that accumulates items
// until the window is full or the list runs out (Collect).
//
// The package is generic over the node type and knows nothing about the
// queries behind a page; callers supply an InfoFunc or PageFunc bound to a
// concrete backend operation. Both loops only ever move the cursor forward
// and both degrade to partial results instead of failing: a missing page or
// a failed request ends the walk where it stands.
package paginate
