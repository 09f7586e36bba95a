// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the enrichment stages into one run: identifier
// normalization, organization resolution, affiliation mapping, manual
// corrections, identifier resolution, deduplication, and the final
// author/publication aggregation.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/attribution-engine/internal/aggregate"
	"github.com/pdiddy/attribution-engine/internal/corrections"
	"github.com/pdiddy/attribution-engine/internal/dedupe"
	"github.com/pdiddy/attribution-engine/internal/ingest"
	"github.com/pdiddy/attribution-engine/internal/match"
	"github.com/pdiddy/attribution-engine/internal/normalize"
	"github.com/pdiddy/attribution-engine/internal/orgs"
	"github.com/pdiddy/attribution-engine/pkg/types"
)

// Input holds the immutable input tables produced by the harvest
// collaborators. Run never mutates them.
type Input struct {
	Publications  []types.Publication
	Authors       []types.Author
	Organizations []types.Organization
}

// Output holds the enriched result tables and run statistics.
type Output struct {
	Publications []types.EnrichedPublication
	Authors      []types.Author

	// Resolved and Unresolved count identifier-resolution outcomes;
	// LookupFailures counts per-row lookup errors (each also counted
	// unresolved). DupsRemoved counts rows dropped by deduplication.
	Resolved       int
	Unresolved     int
	LookupFailures int
	DupsRemoved    int
}

// Run executes the full enrichment pipeline. The mapping and rules
// tables are read-only and shared across stages. lookup may be nil, in
// which case identifier resolution is skipped and DOI-less rows stay
// unresolved. Row-level warnings go to w.
//
// Structurally invalid input (missing required fields, malformed
// correction payloads) fails the whole batch before any partial output
// is produced; expected data-quality conditions (unresolved matches,
// cycles, lookup failures) never do.
func Run(ctx context.Context, in Input, mapping types.FacultyMapping, rules []types.CorrectionRule, lookup match.Lookup, cfg types.MatchConfig, w io.Writer) (Output, error) {
	if err := ingest.Validate(in.Publications, in.Authors, in.Organizations); err != nil {
		return Output{}, err
	}

	pubs := normalizePublications(in.Publications)

	// Author-level enrichment: hierarchy, affiliations, corrections.
	resolved := orgs.ResolveHierarchy(in.Organizations, mapping)
	authors := orgs.MapAuthorAffiliations(in.Authors, resolved, mapping)
	authors, err := corrections.Apply(authors, rules, mapping)
	if err != nil {
		return Output{}, fmt.Errorf("applying corrections: %w", err)
	}

	// Publication-level identifier resolution, then deduplication.
	pubs, summary := match.ResolveMissingIDs(ctx, pubs, lookup, cfg, w)
	pubs, removed := dedupe.Deduplicate(pubs)

	enriched := aggregate.JoinAuthorsAndPublications(pubs, authors, mapping.Codes)

	return Output{
		Publications:   enriched,
		Authors:        authors,
		Resolved:       summary.Resolved,
		Unresolved:     summary.Unresolved,
		LookupFailures: summary.Failures,
		DupsRemoved:    removed,
	}, nil
}

// normalizePublications canonicalizes DOIs up front so every later stage
// can treat them as opaque keys. Titles keep their display form; stages
// that compare titles normalize on the fly.
func normalizePublications(pubs []types.Publication) []types.Publication {
	out := make([]types.Publication, len(pubs))
	copy(out, pubs)
	for i := range out {
		out[i].DOI = normalize.DOI(out[i].DOI)
	}
	return out
}
