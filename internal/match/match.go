// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match scores title similarity and resolves missing cross-source
// identifiers through candidate lookups.
package match

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/pdiddy/attribution-engine/internal/normalize"
	"github.com/pdiddy/attribution-engine/pkg/types"
)

// Standard policy values. Threshold and boost are tunable data-quality
// knobs; a zero boost set explicitly in configuration is honored, so
// defaults are supplied by DefaultConfig rather than coerced here.
const (
	DefaultThreshold            = 0.9
	DefaultBoost                = 0.05
	DefaultMaxConcurrentLookups = 4
)

// DefaultConfig returns the standard matching configuration.
func DefaultConfig() types.MatchConfig {
	return types.MatchConfig{
		Threshold:            DefaultThreshold,
		Boost:                DefaultBoost,
		MaxConcurrentLookups: DefaultMaxConcurrentLookups,
	}
}

// Lookup fetches title-based candidate records from an external source.
// A call may fail; the failure is confined to that one title.
type Lookup interface {
	WorksByTitle(ctx context.Context, title string) ([]types.Candidate, error)
}

// Similarity returns a normalized edit-distance similarity in [0,1].
// Symmetric, and 1.0 iff the inputs are identical after title
// normalization.
func Similarity(a, b string) float64 {
	na, nb := normalize.Title(a), normalize.Title(b)
	if na == nb {
		return 1.0
	}
	if na == "" || nb == "" {
		return 0.0
	}
	longest := len([]rune(na))
	if l := len([]rune(nb)); l > longest {
		longest = l
	}
	dist := levenshtein.ComputeDistance(na, nb)
	return 1.0 - float64(dist)/float64(longest)
}

// Summary holds counts from an identifier-resolution run.
type Summary struct {
	Resolved   int
	Unresolved int
	Failures   int
}

// ResolveMissingIDs returns a copy of pubs in which rows lacking a DOI
// have been matched against title-lookup candidates. For each candidate
// the adjusted score is Similarity(local, candidate) plus cfg.Boost when
// the home institution is a corresponding host; the best-scoring
// candidate wins, ties broken by candidate return order. A row is filled
// only when the adjusted score exceeds cfg.Threshold; otherwise it stays
// unresolved, which is not an error.
//
// Lookups fan out concurrently, bounded by cfg.MaxConcurrentLookups. A
// failed lookup is logged to w and leaves only its own row unresolved;
// the rest of the batch proceeds.
//
// Threshold and boost are taken from cfg as given; start from
// DefaultConfig for the standard policy values.
func ResolveMissingIDs(ctx context.Context, pubs []types.Publication, lookup Lookup, cfg types.MatchConfig, w io.Writer) ([]types.Publication, Summary) {
	threshold := cfg.Threshold
	boost := cfg.Boost
	limit := cfg.MaxConcurrentLookups
	if limit <= 0 {
		limit = DefaultMaxConcurrentLookups
	}

	out := make([]types.Publication, len(pubs))
	copy(out, pubs)

	var pending []int
	for i, p := range out {
		if p.DOI == "" && p.Title != "" {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 || lookup == nil {
		return out, Summary{}
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		summary Summary
		sem     = make(chan struct{}, limit)
	)

	for _, idx := range pending {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			title := out[idx].Title
			candidates, err := lookup.WorksByTitle(ctx, title)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Fprintf(w, "warning: lookup failed for %q: %v\n", title, err)
				summary.Failures++
				summary.Unresolved++
				return
			}

			best := -1
			bestScore := 0.0
			for i, c := range candidates {
				adjusted := Similarity(title, c.Title)
				if c.CorrespondingHost {
					adjusted += boost
				}
				// Strictly greater keeps the earliest candidate on ties.
				if adjusted > bestScore {
					best = i
					bestScore = adjusted
				}
			}

			if best < 0 || bestScore <= threshold {
				summary.Unresolved++
				return
			}
			if doi := normalize.DOI(candidates[best].DOI); doi != "" {
				out[idx].DOI = doi
			}
			if candidates[best].ID != "" {
				out[idx].OpenAlexID = candidates[best].ID
			}
			summary.Resolved++
		}(idx)
	}

	wg.Wait()
	return out, summary
}
