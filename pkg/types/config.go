// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultTimeout bounds each upstream request.
const DefaultTimeout = 30 * time.Second

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "journal-tracker/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for a batch fetch across journals.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Provider selects the upstream metadata API: "openalex" or "crossref".
	Provider string `json:"provider" yaml:"provider"`

	// Keyword is the free-text keyword; empty disables keyword filtering.
	Keyword string `json:"keyword" yaml:"keyword"`

	// LookbackYears is how many years before now the date filter starts.
	LookbackYears int `json:"years" yaml:"years"`

	// MaxResults caps the number of results requested per journal.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Mailto is the optional contact email sent to the upstream API.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// JournalsFile optionally replaces the built-in journal directory.
	JournalsFile string `json:"journals_file,omitempty" yaml:"journals_file,omitempty"`
}
