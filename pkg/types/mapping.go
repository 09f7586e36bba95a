// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FacultyMapping is the static name-to-code table supplied by the caller.
// It is loaded once, passed by reference, and never mutated by any stage.
type FacultyMapping struct {
	// Mapping maps full organization names to faculty/institute codes
	// (e.g. "Faculty of Science and Technology" -> "tnw").
	Mapping map[string]string `json:"mapping" yaml:"mapping"`

	// Codes lists every known faculty/institute code. Boolean flag maps
	// carry exactly these keys.
	Codes []string `json:"codes" yaml:"codes"`

	// InstitutionID is the repository id of the home institution, used
	// for membership checks.
	InstitutionID string `json:"institution_id" yaml:"institution_id"`

	// OpenAlexInstitutionID is the OpenAlex id of the home institution,
	// used for the corresponding-host boost during candidate lookup.
	OpenAlexInstitutionID string `json:"openalex_institution_id" yaml:"openalex_institution_id"`
}

// CorrectionRule is one entry of the ordered manual-correction list. A
// matching rule fully replaces the author's derived faculty attributes
// with the payloads in Affiliations.
type CorrectionRule struct {
	// Name matches authors by normalized display name.
	Name string `json:"name" yaml:"name"`

	// Qualifier optionally disambiguates by author id when two people
	// share a name.
	Qualifier string `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`

	// Affiliations holds override payloads, each either
	// "FACULTY-DEPARTMENT-GROUP" or a bare institute code.
	Affiliations []string `json:"affiliations" yaml:"affiliations"`
}
