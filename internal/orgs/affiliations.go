// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orgs

import (
	"sort"

	"github.com/pdiddy/attribution-engine/pkg/types"
)

// MapAuthorAffiliations returns a copy of authors with derived
// affiliation attributes filled in: one boolean flag per known faculty
// code, the institution-membership flag, and the department and group
// lists taken from the resolver's sub-unit classification.
//
// An affiliation id with no matching organization is skipped. Authors
// with no resolvable affiliation get all flags false and
// IsInstitutionMember false; flags are never null so the aggregator can
// OR them without guards.
func MapAuthorAffiliations(authors []types.Author, resolved []types.ResolvedOrg, mapping types.FacultyMapping) []types.Author {
	index := make(map[string]types.ResolvedOrg, len(resolved))
	for _, ro := range resolved {
		index[ro.ID] = ro
	}

	out := make([]types.Author, 0, len(authors))
	for _, author := range authors {
		a := author
		a.FacultyFlags = NewFlagMap(mapping.Codes)
		a.IsInstitutionMember = false

		departments := map[string]bool{}
		groups := map[string]bool{}
		for _, affID := range a.AffiliationIDs {
			ro, ok := index[affID]
			if !ok {
				continue
			}
			for _, ancestor := range ro.Ancestors {
				if ancestor == mapping.InstitutionID {
					a.IsInstitutionMember = true
				}
			}
			if ro.Status != types.ResolutionKnown {
				continue
			}
			a.FacultyFlags[ro.FacultyCode] = true
			if ro.Department != "" {
				departments[ro.Department] = true
			}
			for _, g := range ro.Groups {
				groups[g] = true
			}
		}

		a.Departments = sortedKeys(departments)
		a.Groups = sortedKeys(groups)
		out = append(out, a)
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
