// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate folds enriched author attributes back to publication
// grain.
package aggregate

import (
	"sort"

	"github.com/pdiddy/attribution-engine/internal/orgs"
	"github.com/pdiddy/attribution-engine/pkg/types"
)

// JoinAuthorsAndPublications explodes each publication's author list,
// left-joins enriched author attributes, and folds the pairs back to one
// row per publication. Boolean flags OR over the author group, so a flag
// is true iff at least one author carries it; collection attributes are
// deduplicated unions emitted in sorted order. Publications with unknown
// or empty author lists keep their row with all-false flags — no
// publication is dropped. Publication-native fields pass through
// untouched and output order equals input order.
func JoinAuthorsAndPublications(pubs []types.Publication, authors []types.Author, codes []string) []types.EnrichedPublication {
	index := make(map[string]types.Author, len(authors))
	for _, a := range authors {
		index[a.ID] = a
	}

	out := make([]types.EnrichedPublication, 0, len(pubs))
	for _, p := range pubs {
		row := types.EnrichedPublication{
			Publication:  p,
			FacultyFlags: orgs.NewFlagMap(codes),
		}

		departments := map[string]bool{}
		groups := map[string]bool{}
		orcids := map[string]bool{}
		for _, authorID := range p.AuthorIDs {
			a, ok := index[authorID]
			if !ok {
				continue
			}
			for code, set := range a.FacultyFlags {
				if set {
					row.FacultyFlags[code] = true
				}
			}
			if a.IsInstitutionMember {
				row.InstitutionAuthored = true
			}
			addAll(departments, a.Departments)
			addAll(groups, a.Groups)
			if a.ORCID != "" {
				orcids[a.ORCID] = true
			}
		}

		row.Departments = sortedKeys(departments)
		row.Groups = sortedKeys(groups)
		row.ORCIDs = sortedKeys(orcids)
		out = append(out, row)
	}
	return out
}

func addAll(set map[string]bool, values []string) {
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
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
