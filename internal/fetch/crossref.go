// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pdiddy/journal-tracker/internal/httputil"
	"github.com/pdiddy/journal-tracker/pkg/types"
)

// crossrefWorksBase is the Crossref Works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefWorksBase = "https://api.crossref.org/works"

// markupPolicy strips the JATS/HTML markup Crossref embeds in abstracts.
var markupPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// crossrefDateKeys are the date objects consulted in order.
var crossrefDateKeys = []string{"issued", "published", "published-print", "published-online"}

// CrossrefSource queries the Crossref Works API.
type CrossrefSource struct {
	Client    *http.Client
	UserAgent string
	Logger    *slog.Logger
}

// Name returns the provider identifier.
func (s *CrossrefSource) Name() string { return ProviderCrossref }

// Fetch requests one page of works for q.ISSN published on or after q.From
// and returns the normalized articles that pass the keyword post-filter.
func (s *CrossrefSource) Fetch(ctx context.Context, q Query) ([]types.Article, error) {
	params := crossrefParams(q)

	var resp struct {
		Message struct {
			Items []record `json:"items"`
		} `json:"message"`
	}
	if err := httputil.GetJSON(ctx, s.Client, crossrefWorksBase, params, s.UserAgent, &resp); err != nil {
		return nil, fmt.Errorf("Crossref request: %w", err)
	}

	items := resp.Message.Items
	articles := make([]types.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, normalizeCrossref(item))
	}
	kept := keep(articles, q.Keyword)

	loggerOrDiscard(s.Logger).Debug("crossref page fetched",
		"issn", q.ISSN, "results", len(items), "kept", len(kept))
	return kept, nil
}

// crossrefParams builds the Works query. Crossref ANDs comma-joined filters.
func crossrefParams(q Query) url.Values {
	filters := []string{
		"from-pub-date:" + q.From.Format(dateFmt),
		"issn:" + q.ISSN,
	}

	params := url.Values{
		"filter": {strings.Join(filters, ",")},
		"rows":   {strconv.Itoa(q.MaxResults)},
		"sort":   {"published"},
		"order":  {"desc"},
	}
	if q.Keyword != "" {
		params.Set("query", q.Keyword)
	}
	if q.Mailto != "" {
		params.Set("mailto", q.Mailto)
	}
	return params
}

// normalizeCrossref maps one Crossref work item to an Article.
func normalizeCrossref(item record) types.Article {
	doi := StripDOI(item.str("DOI"))

	a := types.Article{
		Title:         item.firstStr("title"),
		Journal:       item.firstStr("container-title"),
		DOI:           doi,
		PublishedDate: crossrefDate(item),
		Abstract:      stripMarkup(item.str("abstract")),
		URL:           firstNonEmpty(item.obj("resource").obj("primary").str("URL"), item.str("URL"), doiURL(doi)),
		Concepts:      item.strs("subject"),
	}

	for _, person := range item.records("author") {
		if name := crossrefAuthorName(person); name != "" {
			a.Authors = append(a.Authors, name)
		}
	}
	return a
}

// crossrefAuthorName joins given and family names, dropping blank parts.
// Organisational authors carry only "name".
func crossrefAuthorName(person record) string {
	var parts []string
	for _, key := range []string{"given", "family"} {
		if p := strings.TrimSpace(person.str(key)); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(person.str("name"))
	}
	return strings.Join(parts, " ")
}

func crossrefDate(item record) string {
	for _, key := range crossrefDateKeys {
		if d := datePartsDate(dateParts(item.obj(key))); d != "" {
			return d
		}
	}
	return ""
}

// stripMarkup removes tags and collapses whitespace.
func stripMarkup(s string) string {
	if s == "" {
		return ""
	}
	clean := html.UnescapeString(markupPolicy.Sanitize(s))
	return strings.Join(strings.Fields(clean), " ")
}
