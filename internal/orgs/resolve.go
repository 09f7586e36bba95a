// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orgs resolves the organizational hierarchy to faculty codes and
// maps author affiliations onto them.
package orgs

import (
	"strings"

	"github.com/pdiddy/attribution-engine/pkg/types"
)

// ResolveHierarchy walks each organization's part_of chain toward its
// root and assigns the faculty code of the first matching ancestor,
// closest to the leaf first. The units walked before that match are
// classified by depth: the one directly below the match is the
// department, anything deeper is a group. The walk is iterative with a
// visited set: a chain that revisits a node stops and leaves the
// organization unresolved, as does a chain with a dangling parent
// reference or no matching ancestor. Neither condition is an error.
//
// Output order equals input order.
func ResolveHierarchy(organizations []types.Organization, mapping types.FacultyMapping) []types.ResolvedOrg {
	arena := make(map[string]types.Organization, len(organizations))
	for _, org := range organizations {
		arena[org.ID] = org
	}

	resolved := make([]types.ResolvedOrg, 0, len(organizations))
	for _, org := range organizations {
		resolved = append(resolved, resolveOne(org, arena, mapping))
	}
	return resolved
}

func resolveOne(org types.Organization, arena map[string]types.Organization, mapping types.FacultyMapping) types.ResolvedOrg {
	ro := types.ResolvedOrg{
		Organization: org,
		Status:       types.ResolutionUnresolved,
	}

	visited := make(map[string]bool)
	var below []string
	current := org
	for {
		if visited[current.ID] {
			// Cycle in the part_of chain. Keep the ancestors walked so
			// far for membership checks; a code found before the revisit
			// still stands.
			return ro
		}
		visited[current.ID] = true
		ro.Ancestors = append(ro.Ancestors, current.ID)

		// First matching ancestor (closest to the leaf) wins. The walk
		// continues to the root regardless, because the full ancestor
		// set feeds institution-membership checks.
		if ro.Status != types.ResolutionKnown {
			if code, ok := facultyCode(current.Name, mapping); ok {
				ro.FacultyCode = code
				ro.Status = types.ResolutionKnown
				if n := len(below); n > 0 {
					ro.Department = below[n-1]
					ro.Groups = below[:n-1]
				}
			} else {
				below = append(below, current.Name)
			}
		}

		if current.PartOf == "" {
			return ro
		}
		parent, ok := arena[current.PartOf]
		if !ok {
			// Dangling parent reference; the chain ends here.
			return ro
		}
		current = parent
	}
}

// facultyCode matches an organization name against the mapping. An
// organization named directly by a short code counts as that code.
func facultyCode(name string, mapping types.FacultyMapping) (string, bool) {
	if code, ok := mapping.Mapping[name]; ok {
		return code, true
	}
	lower := strings.ToLower(name)
	for _, code := range mapping.Codes {
		if lower == code {
			return code, true
		}
	}
	return "", false
}

// NewFlagMap returns a flag map with every known code present and false.
// Downstream boolean aggregation relies on flags never being absent.
func NewFlagMap(codes []string) map[string]bool {
	flags := make(map[string]bool, len(codes))
	for _, code := range codes {
		flags[code] = false
	}
	return flags
}
