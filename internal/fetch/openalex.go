// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/journal-tracker/internal/httputil"
	"github.com/pdiddy/journal-tracker/pkg/types"
)

// openAlexWorksBase is the OpenAlex Works endpoint. Declared as a var so
// tests can substitute an httptest server.
var openAlexWorksBase = "https://api.openalex.org/works"

// openAlexMaxPerPage is the largest page OpenAlex serves.
const openAlexMaxPerPage = 200

// OpenAlexSource queries the OpenAlex Works API.
type OpenAlexSource struct {
	Client    *http.Client
	UserAgent string
	Logger    *slog.Logger
}

// Name returns the provider identifier.
func (s *OpenAlexSource) Name() string { return ProviderOpenAlex }

// Fetch requests one page of works for q.ISSN published on or after q.From
// and returns the normalized articles that pass the keyword post-filter.
func (s *OpenAlexSource) Fetch(ctx context.Context, q Query) ([]types.Article, error) {
	params := openAlexParams(q)

	var resp struct {
		Results []record `json:"results"`
	}
	if err := httputil.GetJSON(ctx, s.Client, openAlexWorksBase, params, s.UserAgent, &resp); err != nil {
		return nil, fmt.Errorf("OpenAlex request: %w", err)
	}

	articles := make([]types.Article, 0, len(resp.Results))
	for _, work := range resp.Results {
		articles = append(articles, normalizeOpenAlex(work))
	}
	kept := keep(articles, q.Keyword)

	loggerOrDiscard(s.Logger).Debug("openalex page fetched",
		"issn", q.ISSN, "results", len(resp.Results), "kept", len(kept))
	return kept, nil
}

// openAlexParams builds the Works query. Filters are comma-joined, which
// OpenAlex combines with AND.
func openAlexParams(q Query) url.Values {
	filters := []string{
		"primary_location.source.issn:" + q.ISSN,
		"from_publication_date:" + q.From.Format(dateFmt),
	}

	perPage := q.MaxResults
	if perPage > openAlexMaxPerPage {
		perPage = openAlexMaxPerPage
	}

	params := url.Values{
		"filter":   {strings.Join(filters, ",")},
		"sort":     {"publication_date:desc"},
		"per_page": {strconv.Itoa(perPage)},
		"page":     {"1"},
	}
	if q.Keyword != "" {
		params.Set("search", q.Keyword)
	}
	if q.Mailto != "" {
		params.Set("mailto", q.Mailto)
	}
	return params
}

// normalizeOpenAlex maps one OpenAlex work to an Article.
func normalizeOpenAlex(work record) types.Article {
	primary := work.obj("primary_location")
	hostVenue := work.obj("host_venue")

	doi := StripDOI(work.str("doi"))
	year, hasYear := work.integer("publication_year")

	a := types.Article{
		Title:         firstNonEmpty(work.firstStr("title"), work.str("display_name")),
		Journal:       firstNonEmpty(primary.obj("source").str("display_name"), hostVenue.str("display_name")),
		DOI:           doi,
		PublishedDate: publicationDate(work.str("publication_date"), year, hasYear),
		Abstract:      abstractOf(work, "abstract_inverted_index", "abstract"),
		URL:           firstNonEmpty(primary.str("landing_page_url"), hostVenue.str("url"), doiURL(doi)),
	}

	for _, authorship := range work.records("authorships") {
		if name := authorship.obj("author").str("display_name"); name != "" {
			a.Authors = append(a.Authors, name)
		}
	}
	for _, concept := range work.records("concepts") {
		if name := concept.str("display_name"); name != "" {
			a.Concepts = append(a.Concepts, name)
		}
	}
	return a
}
