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

package linear

import (
	"context"
	"errors"
	"fmt"

	relayerrors "github.com/sirseerhq/linear-relay/internal/errors"
	"github.com/sirseerhq/linear-relay/internal/paginate"
)

// MockClient is a mock implementation of the Linear Client interface for
// testing. Paged calls replay scripted pages in order; once a script is
// exhausted, an empty terminal page is returned. All calls are recorded for
// verification.
type MockClient struct {
	// Scripted responses
	IssuePages []IssuePage
	PageInfos  []paginate.PageInfo
	TeamList   []Team
	StateList  []WorkflowState

	// Error to return from every call when set
	Err error

	// 1-based call index at which the respective paged call fails (0 = never)
	FailFetchAt int
	FailInfoAt  int

	// Error to return from ApplyState
	ApplyErr error

	// Track calls for verification
	FetchCalls  int
	InfoCalls   int
	FetchSizes  []int
	InfoSizes   []int
	FetchAfters []string
	InfoAfters  []string
	SearchTerms []string
	LastTeamID  string
	Applied     [][2]string
}

// FetchIssues implements the Client interface.
func (m *MockClient) FetchIssues(ctx context.Context, teamID string, opts FetchOptions) (*IssuePage, error) {
	return m.nextPage(ctx, teamID, opts)
}

// SearchIssues implements the Client interface. It replays the same page
// script as FetchIssues and additionally records the search term.
func (m *MockClient) SearchIssues(ctx context.Context, teamID, term string, opts FetchOptions) (*IssuePage, error) {
	m.SearchTerms = append(m.SearchTerms, term)
	return m.nextPage(ctx, teamID, opts)
}

// FetchIssuePageInfo implements the Client interface.
func (m *MockClient) FetchIssuePageInfo(ctx context.Context, teamID string, opts FetchOptions) (*paginate.PageInfo, error) {
	return m.nextInfo(ctx, teamID, opts)
}

// SearchIssuePageInfo implements the Client interface.
func (m *MockClient) SearchIssuePageInfo(ctx context.Context, teamID, term string, opts FetchOptions) (*paginate.PageInfo, error) {
	m.SearchTerms = append(m.SearchTerms, term)
	return m.nextInfo(ctx, teamID, opts)
}

// Teams implements the Client interface.
func (m *MockClient) Teams(ctx context.Context) ([]Team, error) {
	if err := m.pending(ctx); err != nil {
		return nil, err
	}
	return m.TeamList, nil
}

// TeamIDByKey implements the Client interface.
func (m *MockClient) TeamIDByKey(ctx context.Context, key string) (string, error) {
	if err := m.pending(ctx); err != nil {
		return "", err
	}
	for _, team := range m.TeamList {
		if team.Key == key {
			return team.ID, nil
		}
	}
	return "", fmt.Errorf("team '%s': %w", key, relayerrors.ErrTeamNotFound)
}

// AvailableStates implements the Client interface.
func (m *MockClient) AvailableStates(ctx context.Context, issueID string) ([]WorkflowState, error) {
	if err := m.pending(ctx); err != nil {
		return nil, err
	}
	return m.StateList, nil
}

// ApplyState implements the Client interface.
func (m *MockClient) ApplyState(ctx context.Context, issueID, stateID string) error {
	if err := m.pending(ctx); err != nil {
		return err
	}
	if m.ApplyErr != nil {
		return m.ApplyErr
	}
	m.Applied = append(m.Applied, [2]string{issueID, stateID})
	return nil
}

// Reset clears recorded calls and replays scripts from the beginning.
func (m *MockClient) Reset() {
	m.FetchCalls = 0
	m.InfoCalls = 0
	m.FetchSizes = nil
	m.InfoSizes = nil
	m.FetchAfters = nil
	m.InfoAfters = nil
	m.SearchTerms = nil
	m.LastTeamID = ""
	m.Applied = nil
}

func (m *MockClient) nextPage(ctx context.Context, teamID string, opts FetchOptions) (*IssuePage, error) {
	m.FetchCalls++
	m.LastTeamID = teamID
	m.FetchSizes = append(m.FetchSizes, opts.PageSize)
	m.FetchAfters = append(m.FetchAfters, opts.After)

	if err := m.pending(ctx); err != nil {
		return nil, err
	}
	if m.FailFetchAt > 0 && m.FetchCalls == m.FailFetchAt {
		return nil, errors.New("scripted fetch failure")
	}

	idx := m.FetchCalls - 1
	if idx >= len(m.IssuePages) {
		return &IssuePage{Info: paginate.PageInfo{HasNextPage: false}}, nil
	}
	page := m.IssuePages[idx]
	return &page, nil
}

func (m *MockClient) nextInfo(ctx context.Context, teamID string, opts FetchOptions) (*paginate.PageInfo, error) {
	m.InfoCalls++
	m.LastTeamID = teamID
	m.InfoSizes = append(m.InfoSizes, opts.PageSize)
	m.InfoAfters = append(m.InfoAfters, opts.After)

	if err := m.pending(ctx); err != nil {
		return nil, err
	}
	if m.FailInfoAt > 0 && m.InfoCalls == m.FailInfoAt {
		return nil, errors.New("scripted page info failure")
	}

	idx := m.InfoCalls - 1
	if idx >= len(m.PageInfos) {
		return &paginate.PageInfo{HasNextPage: false}, nil
	}
	info := m.PageInfos[idx]
	return &info, nil
}

func (m *MockClient) pending(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return m.Err
}
