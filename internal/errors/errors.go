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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidAPIKey indicates Linear authentication failed.
	// Maps to exit code 2.
	ErrInvalidAPIKey = errors.New("invalid linear api key")

	// ErrTeamNotFound indicates the requested team key does not exist or is not accessible.
	// Maps to exit code 2.
	ErrTeamNotFound = errors.New("team not found")

	// ErrNoTeams indicates the workspace exposes no teams at all, which
	// usually means the API key belongs to the wrong workspace.
	// Maps to exit code 2.
	ErrNoTeams = errors.New("no teams accessible")

	// ErrIssueNotFound indicates the requested issue does not exist.
	// Maps to exit code 2.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrStateChangeRejected indicates the backend refused a workflow state
	// transition (the mutation reported success=false).
	ErrStateChangeRejected = errors.New("state change rejected")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates the Linear API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("linear rate limit exceeded")
)
