// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the record and configuration structures shared
// across pipeline stages.
package types

// Publication is a single bibliographic record as harvested from the
// institutional repository and/or OpenAlex. Records are immutable inputs:
// stages copy rows, they never mutate them in place.
type Publication struct {
	// ID is the source-stable repository identifier.
	ID string `json:"id" yaml:"id"`

	// DOI is the normalized DOI, or empty when the record has none.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// OpenAlexID is the OpenAlex work identifier, or empty when unresolved.
	OpenAlexID string `json:"openalex_id,omitempty" yaml:"openalex_id,omitempty"`

	// Title is the publication title (required).
	Title string `json:"title" yaml:"title"`

	// Year is the publication year, or 0 when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// AuthorIDs references Author records by repository id, in author order.
	AuthorIDs []string `json:"author_ids,omitempty" yaml:"author_ids,omitempty"`

	// FromRepository and FromOpenAlex record source provenance.
	FromRepository bool `json:"from_repository,omitempty" yaml:"from_repository,omitempty"`
	FromOpenAlex   bool `json:"from_openalex,omitempty" yaml:"from_openalex,omitempty"`
}

// EnrichedPublication is a publication row after author attribution has
// been folded back to publication grain.
type EnrichedPublication struct {
	Publication `yaml:",inline"`

	// FacultyFlags is true for a code iff at least one author carries
	// that flag. Keys cover every known faculty/institute code; values
	// are never absent for a known code.
	FacultyFlags map[string]bool `json:"faculty_flags" yaml:"faculty_flags"`

	// InstitutionAuthored is true iff at least one author is an
	// institution member.
	InstitutionAuthored bool `json:"institution_authored" yaml:"institution_authored"`

	// Departments, Groups, and ORCIDs are sorted, deduplicated unions
	// over the publication's authors.
	Departments []string `json:"departments,omitempty" yaml:"departments,omitempty"`
	Groups      []string `json:"groups,omitempty" yaml:"groups,omitempty"`
	ORCIDs      []string `json:"orcids,omitempty" yaml:"orcids,omitempty"`
}

// Candidate is a scored pairing between a local publication and an
// external-source record, as returned by a title lookup. Candidates are
// consumed by the identity matcher and never persisted.
type Candidate struct {
	// ID is the external work identifier.
	ID string `json:"id"`

	// DOI is the candidate's DOI, or empty.
	DOI string `json:"doi,omitempty"`

	// Title is the candidate's display title.
	Title string `json:"title"`

	// CorrespondingHost is true when the home institution is listed as a
	// corresponding author's institution on the candidate record.
	CorrespondingHost bool `json:"corresponding_host"`
}
