// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/journal-tracker/internal/fetch"
	"github.com/pdiddy/journal-tracker/internal/journals"
	"github.com/pdiddy/journal-tracker/pkg/types"
)

// --- mock source ---

type mockSource struct {
	byISSN  map[string][]types.Article
	errs    map[string]error
	queries []fetch.Query
}

func (m *mockSource) Name() string { return "mock" }

func (m *mockSource) Fetch(_ context.Context, q fetch.Query) ([]types.Article, error) {
	m.queries = append(m.queries, q)
	if err := m.errs[q.ISSN]; err != nil {
		return nil, err
	}
	return m.byISSN[q.ISSN], nil
}

func testDirectory(t *testing.T) journals.Directory {
	t.Helper()
	d, err := journals.New([]journals.Journal{
		{Name: "Alpha", ISSN: "1111-1111"},
		{Name: "Beta", ISSN: "2222-2222"},
		{Name: "Gamma", ISSN: "3333-3333"},
	})
	require.NoError(t, err)
	return d
}

var fixedNow = time.Date(2026, 10, 15, 13, 45, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func testRequest(names ...string) Request {
	return Request{Journals: names, Keyword: "nudge", LookbackYears: 10, MaxResults: 50, Mailto: "me@example.com"}
}

func TestFetchIsolatesJournalFailure(t *testing.T) {
	src := &mockSource{
		byISSN: map[string][]types.Article{
			"1111-1111": {{Title: "A1"}, {Title: "A2"}},
			"3333-3333": {{Title: "G1"}},
		},
		errs: map[string]error{"2222-2222": errors.New("connection reset")},
	}

	type call struct {
		done, total int
		journal     string
		failed      bool
	}
	var calls []call
	tr := New(testDirectory(t), src,
		WithClock(clock),
		WithProgress(func(done, total int, journal string, err error) {
			calls = append(calls, call{done, total, journal, err != nil})
		}),
	)

	batch, err := tr.Fetch(context.Background(), testRequest("Alpha", "Beta", "Gamma"))
	require.NoError(t, err)

	var titles []string
	for _, a := range batch.Articles() {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"A1", "A2", "G1"}, titles)

	warnings := batch.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Beta fetch failed: connection reset", warnings[0])

	failed := batch.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "Beta", failed[0].Journal)
	assert.Equal(t, "2222-2222", failed[0].ISSN)
	assert.Empty(t, failed[0].Articles)

	assert.Equal(t, []call{
		{1, 3, "Alpha", false},
		{2, 3, "Beta", true},
		{3, 3, "Gamma", false},
	}, calls)
}

func TestFetchPassesQueryParameters(t *testing.T) {
	src := &mockSource{}
	tr := New(testDirectory(t), src, WithClock(clock))

	batch, err := tr.Fetch(context.Background(), testRequest("Gamma", "Alpha"))
	require.NoError(t, err)

	wantFrom := time.Date(2016, 10, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantFrom, batch.From)

	require.Len(t, src.queries, 2)
	assert.Equal(t, fetch.Query{
		ISSN:       "3333-3333",
		Keyword:    "nudge",
		From:       wantFrom,
		MaxResults: 50,
		Mailto:     "me@example.com",
	}, src.queries[0])
	assert.Equal(t, "1111-1111", src.queries[1].ISSN, "journals are processed in the order given")
}

func TestFetchEmptyResultIsNotAnError(t *testing.T) {
	tr := New(testDirectory(t), &mockSource{}, WithClock(clock))

	batch, err := tr.Fetch(context.Background(), testRequest("Alpha"))
	require.NoError(t, err)
	assert.Empty(t, batch.Articles())
	assert.Empty(t, batch.Warnings())
	require.Len(t, batch.Results, 1)
	assert.True(t, batch.Results[0].OK())
}

func TestFetchPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"no journals", Request{LookbackYears: 10, MaxResults: 50}, ErrNoJournals},
		{"unknown journal", testRequest("Alpha", "Nature"), ErrUnknownJournal},
		{"zero lookback", Request{Journals: []string{"Alpha"}, MaxResults: 50}, ErrInvalidRequest},
		{"zero max results", Request{Journals: []string{"Alpha"}, LookbackYears: 1}, ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mockSource{}
			tr := New(testDirectory(t), src, WithClock(clock))

			_, err := tr.Fetch(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, src.queries, "no fetch may happen before preconditions pass")
		})
	}
}

func TestUnknownJournalErrorNamesJournal(t *testing.T) {
	tr := New(testDirectory(t), &mockSource{})
	err := tr.Validate(testRequest("Nature", "Alpha", "Science"))
	assert.EqualError(t, err, `unknown journal: "Nature", "Science"`)
}

// The empty-selection check must fire before any HTTP request reaches the wire.
func TestFetchNoJournalsIssuesNoHTTP(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer ts.Close()

	src, err := fetch.NewSource(fetch.ProviderOpenAlex, ts.Client(), "test", nil)
	require.NoError(t, err)

	_, err = New(journals.Default(), src).Fetch(context.Background(), Request{LookbackYears: 1, MaxResults: 10})
	assert.ErrorIs(t, err, ErrNoJournals)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestLookbackStart(t *testing.T) {
	now := time.Date(2024, 2, 29, 23, 30, 0, 0, time.FixedZone("X", -5*3600))
	// 2024-02-29 23:30 -05:00 is 2024-03-01 04:30 UTC.
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), LookbackStart(now, 1))
	assert.Equal(t, time.Date(2006, 10, 15, 0, 0, 0, 0, time.UTC), LookbackStart(fixedNow, 20))
}

func TestJournalResultWarning(t *testing.T) {
	assert.Equal(t, "", JournalResult{Journal: "Alpha"}.Warning())
	assert.Equal(t, "Alpha fetch failed: HTTP 500",
		JournalResult{Journal: "Alpha", Err: errors.New("HTTP 500")}.Warning())
}
