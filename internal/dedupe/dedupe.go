// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedupe collapses the publication set to one row per real-world
// publication.
package dedupe

import (
	"github.com/pdiddy/attribution-engine/internal/normalize"
	"github.com/pdiddy/attribution-engine/pkg/types"
)

// Deduplicate keeps the first row, in input order, for every normalized
// DOI, then for every normalized title among the rows without a DOI.
// After it returns, no two rows share a non-null normalized DOI and no
// two DOI-less rows share a normalized title. Deterministic for a fixed
// input order.
func Deduplicate(pubs []types.Publication) ([]types.Publication, int) {
	seenDOI := make(map[string]bool)
	seenTitle := make(map[string]bool)

	var kept []types.Publication
	removed := 0
	for _, p := range pubs {
		if doi := normalize.DOI(p.DOI); doi != "" {
			if seenDOI[doi] {
				removed++
				continue
			}
			seenDOI[doi] = true
			kept = append(kept, p)
			continue
		}

		title := normalize.Title(p.Title)
		if seenTitle[title] {
			removed++
			continue
		}
		seenTitle[title] = true
		kept = append(kept, p)
	}
	return kept, removed
}
