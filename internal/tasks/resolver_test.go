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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	relayerrors "github.com/sirseerhq/linear-relay/internal/errors"
	"github.com/sirseerhq/linear-relay/internal/linear"
	"github.com/sirseerhq/linear-relay/internal/paginate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issues(from, count int) []linear.Issue {
	nodes := make([]linear.Issue, 0, count)
	for i := 0; i < count; i++ {
		nodes = append(nodes, linear.Issue{
			ID:         fmt.Sprintf("uuid-%d", from+i),
			Identifier: fmt.Sprintf("ENG-%d", from+i),
			Title:      fmt.Sprintf("Issue %d", from+i),
		})
	}
	return nodes
}

func issuePage(hasNext bool, cursor string, nodes []linear.Issue) linear.IssuePage {
	return linear.IssuePage{
		Nodes: nodes,
		Info:  paginate.PageInfo{HasNextPage: hasNext, EndCursor: cursor},
	}
}

func newTestResolver(mock linear.Client) *Resolver {
	return NewResolver(mock, zerolog.Nop())
}

func TestResolveItems_FirstWindowWithoutOffset(t *testing.T) {
	// Backend with 3 pages of 5 issues each; limit 10 takes the first two.
	mock := &linear.MockClient{IssuePages: []linear.IssuePage{
		issuePage(true, "c1", issues(1, 5)),
		issuePage(true, "c2", issues(6, 5)),
		issuePage(true, "c3", issues(11, 5)),
	}}
	resolver := newTestResolver(mock)

	items := resolver.ResolveItems(context.Background(), ResolveRequest{
		TeamID: "team-1",
		Limit:  10,
	})

	require.Len(t, items, 10)
	assert.Equal(t, issues(1, 10), items, "backend order preserved")
	assert.Equal(t, 0, mock.InfoCalls, "no position walk for offset 0")
	assert.Equal(t, 2, mock.FetchCalls, "exactly two batched requests")
	assert.Equal(t, []string{"", "c1"}, mock.FetchAfters,
		"first request starts at the beginning of the list, never a stale cursor")
}

func TestResolveItems_OffsetResolvesPositionFirst(t *testing.T) {
	// offset=60 fits in a single 250-cap page-info request; fetch phase then
	// needs a single request of size 10.
	mock := &linear.MockClient{
		PageInfos: []paginate.PageInfo{
			{HasNextPage: true, EndCursor: "c60"},
		},
		IssuePages: []linear.IssuePage{
			issuePage(true, "c70", issues(61, 10)),
		},
	}
	resolver := newTestResolver(mock)

	items := resolver.ResolveItems(context.Background(), ResolveRequest{
		TeamID: "team-1",
		Offset: 60,
		Limit:  10,
	})

	require.Len(t, items, 10)
	assert.Equal(t, issues(61, 10), items)
	assert.Equal(t, []int{60}, mock.InfoSizes)
	assert.Equal(t, []string{""}, mock.InfoAfters)
	assert.Equal(t, []int{10}, mock.FetchSizes)
	assert.Equal(t, []string{"c60"}, mock.FetchAfters, "fetch continues after the resolved cursor")
}

func TestResolveItems_ZeroLimitSkipsAllRequests(t *testing.T) {
	mock := &linear.MockClient{}
	resolver := newTestResolver(mock)

	items := resolver.ResolveItems(context.Background(), ResolveRequest{
		TeamID: "team-1",
		Offset: 500,
		Limit:  0,
	})

	assert.Empty(t, items)
	assert.Equal(t, 0, mock.InfoCalls, "limit 0 must not trigger position resolution requests")
	assert.Equal(t, 0, mock.FetchCalls)
}

func TestResolveItems_NegativeWindowYieldsEmpty(t *testing.T) {
	mock := &linear.MockClient{}
	resolver := newTestResolver(mock)

	for _, req := range []ResolveRequest{
		{TeamID: "team-1", Offset: -1, Limit: 10},
		{TeamID: "team-1", Offset: 0, Limit: -10},
	} {
		items := resolver.ResolveItems(context.Background(), req)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.Equal(t, 0, mock.FetchCalls)
	}
}

func TestResolveItems_QuerySelectsSearch(t *testing.T) {
	mock := &linear.MockClient{
		PageInfos: []paginate.PageInfo{
			{HasNextPage: true, EndCursor: "s5"},
		},
		IssuePages: []linear.IssuePage{
			issuePage(false, "s10", issues(6, 5)),
		},
	}
	resolver := newTestResolver(mock)

	items := resolver.ResolveItems(context.Background(), ResolveRequest{
		TeamID: "team-1",
		Query:  "flaky import",
		Offset: 5,
		Limit:  10,
	})

	require.Len(t, items, 5)
	require.NotEmpty(t, mock.SearchTerms, "filter query must dispatch to search")
	for _, term := range mock.SearchTerms {
		assert.Equal(t, "flaky import", term)
	}
}

func TestResolveItems_PartialFailureReturnsEarlierPages(t *testing.T) {
	mock := &linear.MockClient{
		IssuePages: []linear.IssuePage{
			issuePage(true, "c1", issues(1, 50)),
			issuePage(true, "c2", issues(51, 50)),
		},
		FailFetchAt: 3,
	}
	resolver := newTestResolver(mock)

	items := resolver.ResolveItems(context.Background(), ResolveRequest{
		TeamID: "team-1",
		Limit:  150,
	})

	assert.Equal(t, issues(1, 100), items, "the two successful pages survive, no error escapes")
}

func TestResolveItems_ClientFailureYieldsEmpty(t *testing.T) {
	mock := &linear.MockClient{Err: errors.New("backend unavailable")}
	resolver := newTestResolver(mock)

	items := resolver.ResolveItems(context.Background(), ResolveRequest{
		TeamID: "team-1",
		Offset: 60,
		Limit:  10,
	})

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestResolveItems_Idempotence(t *testing.T) {
	script := []linear.IssuePage{
		issuePage(true, "c1", issues(1, 5)),
		issuePage(false, "c2", issues(6, 5)),
	}
	req := ResolveRequest{TeamID: "team-1", Limit: 10}

	first := newTestResolver(&linear.MockClient{IssuePages: script}).
		ResolveItems(context.Background(), req)
	second := newTestResolver(&linear.MockClient{IssuePages: script}).
		ResolveItems(context.Background(), req)

	assert.Equal(t, first, second, "identical requests against an unchanged backend match")
}

func TestResolveItems_IncludeClosedIsNoOp(t *testing.T) {
	script := []linear.IssuePage{
		issuePage(false, "c1", issues(1, 5)),
	}

	open := newTestResolver(&linear.MockClient{IssuePages: script}).
		ResolveItems(context.Background(), ResolveRequest{TeamID: "team-1", Limit: 10})
	all := newTestResolver(&linear.MockClient{IssuePages: script}).
		ResolveItems(context.Background(), ResolveRequest{TeamID: "team-1", Limit: 10, IncludeClosed: true})

	assert.Equal(t, open, all)
}

// blockingClient parks every fetch until the context is cancelled.
type blockingClient struct {
	linear.MockClient
}

func (b *blockingClient) FetchIssues(ctx context.Context, teamID string, opts linear.FetchOptions) (*linear.IssuePage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestResolveItems_CancellationYieldsEmpty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	resolver := newTestResolver(&blockingClient{})

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	items := resolver.ResolveItems(ctx, ResolveRequest{TeamID: "team-1", Limit: 10})

	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Less(t, time.Since(start), 5*time.Second, "cancellation must unblock the caller")
}

// panickyClient simulates an illegal state deep in the fetch path.
type panickyClient struct {
	linear.MockClient
}

func (p *panickyClient) FetchIssues(ctx context.Context, teamID string, opts linear.FetchOptions) (*linear.IssuePage, error) {
	panic("malformed response")
}

func TestResolveItems_PanicYieldsEmpty(t *testing.T) {
	resolver := newTestResolver(&panickyClient{})

	items := resolver.ResolveItems(context.Background(), ResolveRequest{TeamID: "team-1", Limit: 10})

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestVerifyConnection(t *testing.T) {
	tests := []struct {
		name    string
		client  *linear.MockClient
		teamKey string
		wantErr error
	}{
		{
			name: "matching team",
			client: &linear.MockClient{TeamList: []linear.Team{
				{ID: "team-1", Key: "ENG", Name: "Engineering"},
			}},
			teamKey: "ENG",
		},
		{
			name:    "empty workspace",
			client:  &linear.MockClient{},
			teamKey: "ENG",
			wantErr: relayerrors.ErrNoTeams,
		},
		{
			name: "missing team key",
			client: &linear.MockClient{TeamList: []linear.Team{
				{ID: "team-1", Key: "OPS", Name: "Operations"},
			}},
			teamKey: "ENG",
			wantErr: relayerrors.ErrTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestResolver(tt.client).VerifyConnection(context.Background(), tt.teamKey)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVerifyConnection_PropagatesClientError(t *testing.T) {
	backendErr := errors.New("backend unavailable")
	resolver := newTestResolver(&linear.MockClient{Err: backendErr})

	err := resolver.VerifyConnection(context.Background(), "ENG")

	assert.ErrorIs(t, err, backendErr)
}

func TestSingleShotPassThrough(t *testing.T) {
	mock := &linear.MockClient{
		TeamList:  []linear.Team{{ID: "team-1", Key: "ENG"}},
		StateList: []linear.WorkflowState{{ID: "s1", Name: "Todo"}},
	}
	resolver := newTestResolver(mock)
	ctx := context.Background()

	id, err := resolver.TeamIDByKey(ctx, "ENG")
	require.NoError(t, err)
	assert.Equal(t, "team-1", id)

	states, err := resolver.AvailableStates(ctx, "uuid-1")
	require.NoError(t, err)
	assert.Equal(t, mock.StateList, states)

	require.NoError(t, resolver.ApplyState(ctx, "uuid-1", "s1"))
	assert.Equal(t, [][2]string{{"uuid-1", "s1"}}, mock.Applied)
}
