// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves journal articles from bibliographic metadata APIs
// and normalizes each upstream schema into types.Article.
//
// Two strategies implement Source: OpenAlexSource (scholarly-graph schema,
// results at "results") and CrossrefSource (DOI-registry schema, results at
// "message.items"). Both build their own query parameters, reconstruct or
// clean abstracts, and apply MatchesKeyword to every normalized record.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/journal-tracker/pkg/types"
)

// Provider names accepted by NewSource.
const (
	ProviderOpenAlex = "openalex"
	ProviderCrossref = "crossref"
)

// ErrUnknownSource is returned by NewSource for an unsupported provider name.
var ErrUnknownSource = errors.New("unknown source")

// doiResolver is the DOI resolver prefix stripped from DOIs and used to
// build fallback URLs.
const doiResolver = "https://doi.org/"

// doiPrefixes are resolver prefixes removed from raw DOI values.
var doiPrefixes = []string{doiResolver, "http://doi.org/", "http://dx.doi.org/", "https://dx.doi.org/"}

// Query holds the parameters for fetching one journal.
type Query struct {
	// ISSN identifies the journal.
	ISSN string
	// Keyword is free text; empty disables both upstream search and the post-filter.
	Keyword string
	// From is the lookback start date (inclusive).
	From time.Time
	// MaxResults is the page size requested from the API.
	MaxResults int
	// Mailto is an optional contact email; omitted from the request when empty.
	Mailto string
}

// Source fetches one page of articles for a single journal from an
// upstream metadata API.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]types.Article, error)
}

// NewSource returns the Source strategy for provider.
func NewSource(provider string, client *http.Client, userAgent string, logger *slog.Logger) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ProviderOpenAlex, "":
		return &OpenAlexSource{Client: client, UserAgent: userAgent, Logger: logger}, nil
	case ProviderCrossref:
		return &CrossrefSource{Client: client, UserAgent: userAgent, Logger: logger}, nil
	}
	return nil, fmt.Errorf("%w %q: expected %s or %s", ErrUnknownSource, provider, ProviderOpenAlex, ProviderCrossref)
}

// NewHTTPClient returns a client with the given timeout, or the default
// 30s timeout when timeout is not positive.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// UserAgent builds the User-Agent header. Both APIs route requests that
// carry a contact address to their polite pool.
func UserAgent(base, mailto string) string {
	if mailto == "" {
		return base
	}
	return fmt.Sprintf("%s (mailto:%s)", base, mailto)
}

// StripDOI removes a resolver URL prefix from a DOI.
func StripDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, p := range doiPrefixes {
		if strings.HasPrefix(doi, p) {
			return strings.TrimPrefix(doi, p)
		}
	}
	return doi
}

// doiURL returns the resolver URL for a bare DOI, or "" when doi is empty.
func doiURL(doi string) string {
	if doi == "" {
		return ""
	}
	return doiResolver + doi
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// keep filters normalized articles through MatchesKeyword.
func keep(articles []types.Article, keyword string) []types.Article {
	kept := articles[:0]
	for _, a := range articles {
		if MatchesKeyword(a, keyword) {
			kept = append(kept, a)
		}
	}
	return kept
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
