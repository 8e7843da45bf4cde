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

// Package tasks exposes the host-facing resolution surface of linear-relay.
// A Resolver answers windowed issue requests (limit items starting at
// offset, optionally filtered by a free-text query) against the forward-only
// pagination of the Linear API, and passes through the single-shot team and
// workflow state operations.
//
// The resolution entry point deliberately never fails: a backend problem
// mid-window degrades to a shorter or empty list while the failure is
// logged with full context. The single-shot operations take the opposite
// stance and escalate every anomaly to the caller.
package tasks
