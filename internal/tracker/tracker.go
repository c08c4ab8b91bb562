// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tracker runs a batch fetch across a selection of journals.
//
// Journals are processed one at a time in the order given. A failure for
// one journal is recorded in its JournalResult and never aborts the batch;
// there is no retry.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pdiddy/journal-tracker/internal/fetch"
	"github.com/pdiddy/journal-tracker/internal/journals"
	"github.com/pdiddy/journal-tracker/pkg/types"
)

// Precondition errors, returned before any request is issued.
var (
	ErrNoJournals     = errors.New("select at least one journal")
	ErrUnknownJournal = errors.New("unknown journal")
	ErrInvalidRequest = errors.New("invalid request")
)

// Request describes one batch fetch.
type Request struct {
	// Journals are directory names, fetched in this order.
	Journals []string
	// Keyword is passed upstream as a search hint and applied as the
	// authoritative post-filter.
	Keyword string
	// LookbackYears sets the date filter to now minus this many years.
	LookbackYears int
	// MaxResults is the page size per journal.
	MaxResults int
	// Mailto is the optional contact email.
	Mailto string
}

// ProgressFunc is called after each journal finishes, successfully or not.
type ProgressFunc func(done, total int, journal string, err error)

// JournalResult is the outcome for a single journal: either Articles or Err.
type JournalResult struct {
	Journal  string
	ISSN     string
	Articles []types.Article
	Err      error
}

// OK reports whether the journal was fetched without error.
func (r JournalResult) OK() bool { return r.Err == nil }

// Warning formats a failed result as a user-facing message naming the journal.
func (r JournalResult) Warning() string {
	if r.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s fetch failed: %v", r.Journal, r.Err)
}

// Batch collects per-journal results in request order.
type Batch struct {
	From    time.Time
	Results []JournalResult
}

// Articles returns every fetched article, concatenated per journal in
// request order.
func (b Batch) Articles() []types.Article {
	var out []types.Article
	for _, r := range b.Results {
		out = append(out, r.Articles...)
	}
	return out
}

// Warnings returns one message per failed journal.
func (b Batch) Warnings() []string {
	var out []string
	for _, r := range b.Results {
		if !r.OK() {
			out = append(out, r.Warning())
		}
	}
	return out
}

// Failed returns the results whose fetch failed.
func (b Batch) Failed() []JournalResult {
	var out []JournalResult
	for _, r := range b.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

// Tracker fetches articles for journals resolved through a Directory.
type Tracker struct {
	directory journals.Directory
	source    fetch.Source
	logger    *slog.Logger
	progress  ProgressFunc
	now       func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger; the default (and a nil l) discards output.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithProgress registers a callback invoked after each journal.
func WithProgress(fn ProgressFunc) Option {
	return func(t *Tracker) { t.progress = fn }
}

// WithClock overrides the time source used for the lookback window.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New returns a Tracker that resolves names in dir and fetches through src.
func New(dir journals.Directory, src fetch.Source, opts ...Option) *Tracker {
	t := &Tracker{
		directory: dir,
		source:    src,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// LookbackStart returns the date years before now, in UTC.
func LookbackStart(now time.Time, years int) time.Time {
	y, m, d := now.UTC().AddDate(-years, 0, 0).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks req against the directory without touching the network.
func (t *Tracker) Validate(req Request) error {
	if len(req.Journals) == 0 {
		return ErrNoJournals
	}
	var unknown []string
	for _, name := range req.Journals {
		if _, ok := t.directory.Lookup(name); !ok {
			unknown = append(unknown, fmt.Sprintf("%q", name))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownJournal, strings.Join(unknown, ", "))
	}
	if req.LookbackYears < 1 {
		return fmt.Errorf("%w: lookback years must be positive, got %d", ErrInvalidRequest, req.LookbackYears)
	}
	if req.MaxResults < 1 {
		return fmt.Errorf("%w: max results must be positive, got %d", ErrInvalidRequest, req.MaxResults)
	}
	return nil
}

// Fetch validates req and then fetches each journal in order. The returned
// error is non-nil only for precondition failures; per-journal failures
// are reported in the Batch.
func (t *Tracker) Fetch(ctx context.Context, req Request) (Batch, error) {
	if err := t.Validate(req); err != nil {
		return Batch{}, err
	}

	from := LookbackStart(t.now(), req.LookbackYears)
	batch := Batch{From: from, Results: make([]JournalResult, 0, len(req.Journals))}
	total := len(req.Journals)

	for i, name := range req.Journals {
		issn, _ := t.directory.Lookup(name)
		res := JournalResult{Journal: name, ISSN: issn}

		articles, err := t.source.Fetch(ctx, fetch.Query{
			ISSN:       issn,
			Keyword:    req.Keyword,
			From:       from,
			MaxResults: req.MaxResults,
			Mailto:     req.Mailto,
		})
		if err != nil {
			res.Err = err
			t.logger.Warn("journal fetch failed", "journal", name, "issn", issn, "error", err)
		} else {
			res.Articles = articles
			t.logger.Debug("journal fetched", "journal", name, "issn", issn, "articles", len(articles))
		}
		batch.Results = append(batch.Results, res)

		if t.progress != nil {
			t.progress(i+1, total, name, res.Err)
		}
	}
	return batch, nil
}
