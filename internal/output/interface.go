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

package output

import "github.com/sirseerhq/linear-relay/internal/linear"

// IssueWriter is the sink for resolved issues. Keeping it an interface
// allows other formats (CSV, table rendering) without touching the
// resolution code.
type IssueWriter interface {
	// Write emits a single issue. Implementations flush per record so a
	// partial run still leaves usable output behind.
	Write(issue linear.Issue) error

	// Close releases the underlying resource, if any.
	Close() error
}
