// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the journal-tracker pipeline.
//
// Article is the uniform record every upstream schema is normalized into;
// the configuration structs carry the settings the fetch stage consumes.
package types

import "strings"

// ListSeparator joins Authors and Concepts when an Article is flattened
// into a single text cell (CSV, table).
const ListSeparator = ", "

// CSVHeader is the fixed column order of the exported CSV artifact.
var CSVHeader = []string{
	"title",
	"authors",
	"journal",
	"published_date",
	"doi",
	"url",
	"abstract",
	"concepts",
}

// Article represents one journal article normalized from an upstream
// metadata API. Every field has a zero-value default; an Article is never
// rejected for missing optional data.
type Article struct {
	// Title is the article title, empty if the source omits it.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Journal is the venue display name reported by the source.
	Journal string `json:"journal" yaml:"journal"`

	// DOI is the bare DOI without any resolver prefix.
	DOI string `json:"doi" yaml:"doi"`

	// PublishedDate is formatted YYYY-MM-DD, or empty when unknown.
	PublishedDate string `json:"published_date" yaml:"published_date"`

	// Abstract is plain text, possibly empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// URL is a landing page or DOI-resolver URL, possibly empty.
	URL string `json:"url" yaml:"url"`

	// Concepts lists topical tags in source order, not deduplicated.
	Concepts []string `json:"concepts" yaml:"concepts"`
}

// Row returns the Article as a CSV row in CSVHeader order.
func (a Article) Row() []string {
	return []string{
		a.Title,
		strings.Join(a.Authors, ListSeparator),
		a.Journal,
		a.PublishedDate,
		a.DOI,
		a.URL,
		a.Abstract,
		strings.Join(a.Concepts, ListSeparator),
	}
}
