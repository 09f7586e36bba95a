// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResolutionStatus records the outcome of resolving an organization's
// parent chain to a faculty code.
type ResolutionStatus string

const (
	// ResolutionKnown means a faculty code was found on the organization
	// or one of its ancestors.
	ResolutionKnown ResolutionStatus = "known"

	// ResolutionUnresolved means no ancestor matched the faculty mapping,
	// the parent chain had a gap, or the chain contained a cycle.
	ResolutionUnresolved ResolutionStatus = "unresolved"
)

// Organization is an organizational unit from the repository hierarchy.
// Organizations form a forest in the common case; cycles and dangling
// parent references are data-quality defects the resolver tolerates.
type Organization struct {
	// ID is the source-stable repository identifier.
	ID string `json:"id" yaml:"id"`

	// Name is the display name (required).
	Name string `json:"name" yaml:"name"`

	// PartOf is the parent organization id, or empty for a root.
	PartOf string `json:"part_of,omitempty" yaml:"part_of,omitempty"`
}

// ResolvedOrg is an organization after hierarchy resolution.
type ResolvedOrg struct {
	Organization `yaml:",inline"`

	// FacultyCode is the resolved faculty/institute code, or empty when
	// Status is ResolutionUnresolved.
	FacultyCode string `json:"faculty_code,omitempty" yaml:"faculty_code,omitempty"`

	// Status reports whether resolution succeeded.
	Status ResolutionStatus `json:"status" yaml:"status"`

	// Ancestors lists the organization ids walked during resolution,
	// leaf first, including the organization itself. The affiliation
	// mapper uses it for institution-membership checks.
	Ancestors []string `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`

	// Department is the name of the unit directly below the matching
	// ancestor, and Groups the names of any units deeper than that,
	// leaf first. Both are empty when the organization itself matched.
	Department string   `json:"department,omitempty" yaml:"department,omitempty"`
	Groups     []string `json:"groups,omitempty" yaml:"groups,omitempty"`
}
