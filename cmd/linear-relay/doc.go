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

// Command linear-relay resolves issue windows from a Linear workspace and
// streams them as NDJSON. It pages through the workspace's cursor-based
// API on the caller's behalf, so consumers can ask for "40 issues starting
// at offset 120" without handling cursors themselves.
//
// Commands:
//
//	issues <team-key>   resolve a window of issues for a team
//	teams               list the teams in the workspace
//	states <issue-id>   list the workflow states an issue can move to
//	move <issue-id> <state-id>  move an issue to a workflow state
//	verify <team-key>   check credentials and team access
//
// Authentication uses a Linear API key, supplied via --api-key or the
// environment variable named in the config (LINEAR_API_KEY by default).
//
// Exit codes:
//
//	0  success
//	1  general error
//	2  authentication or entity errors (bad key, unknown team or issue)
//	3  network errors
package main
