// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Author is a person record from the repository's person collection.
// The affiliation ids reference Organization records; the derived fields
// are filled by the enrichment stages and are always present afterwards
// (boolean flags are never null, empty lists mean "none").
type Author struct {
	// ID is the source-stable repository identifier.
	ID string `json:"id" yaml:"id"`

	// Name is the display name (required).
	Name string `json:"name" yaml:"name"`

	// ORCID is the author's ORCID iD, or empty.
	ORCID string `json:"orcid,omitempty" yaml:"orcid,omitempty"`

	// AffiliationIDs references Organization records.
	AffiliationIDs []string `json:"affiliation_ids,omitempty" yaml:"affiliation_ids,omitempty"`

	// FacultyFlags holds one boolean per known faculty/institute code.
	// Filled by the affiliation mapper; every known code has an entry.
	FacultyFlags map[string]bool `json:"faculty_flags,omitempty" yaml:"faculty_flags,omitempty"`

	// IsInstitutionMember is true iff any affiliation resolves, directly
	// or through an ancestor, to the home institution.
	IsInstitutionMember bool `json:"is_institution_member" yaml:"is_institution_member"`

	// Departments, Groups, and Institutes are derived organizational
	// detail lists.
	Departments []string `json:"departments,omitempty" yaml:"departments,omitempty"`
	Groups      []string `json:"groups,omitempty" yaml:"groups,omitempty"`
	Institutes  []string `json:"institutes,omitempty" yaml:"institutes,omitempty"`
}
