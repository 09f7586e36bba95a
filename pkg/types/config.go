// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "attribution-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// MatchConfig holds settings for identifier resolution. Threshold and
// Boost are policy defaults carried as configuration, not constants:
// their correct values are a data-quality tuning decision.
type MatchConfig struct {
	// Threshold is the minimum adjusted similarity score for accepting a
	// candidate match (default 0.9). Scores at or below it leave the row
	// unresolved.
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// Boost is added to a candidate's score when the home institution is
	// a corresponding host on the candidate record (default 0.05).
	Boost float64 `json:"boost" yaml:"boost"`

	// MaxConcurrentLookups bounds the candidate-lookup fan-out (default 4).
	MaxConcurrentLookups int `json:"max_concurrent_lookups" yaml:"max_concurrent_lookups"`
}

// LookupConfig holds settings for the OpenAlex title-lookup client.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is sent as mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// MaxResults caps the candidates requested per title (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MaxRetries is the number of retry attempts on rate-limit responses.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// StoreConfig holds settings for the result store.
type StoreConfig struct {
	// Path is the SQLite database file (default "attribution.db").
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Match  MatchConfig  `json:"match" yaml:"match"`
	Lookup LookupConfig `json:"lookup" yaml:"lookup"`
	Store  StoreConfig  `json:"store" yaml:"store"`

	// FacultiesPath and CorrectionsPath locate the static mapping files.
	FacultiesPath   string `json:"faculties_path" yaml:"faculties_path"`
	CorrectionsPath string `json:"corrections_path" yaml:"corrections_path"`
}
