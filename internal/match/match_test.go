// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/attribution-engine/pkg/types"
)

// --- mock lookup ---

type mockLookup struct {
	// candidates maps a title to its candidate list.
	candidates map[string][]types.Candidate
	// failTitles lists titles whose lookup returns an error.
	failTitles []string
}

func (m *mockLookup) WorksByTitle(_ context.Context, title string) ([]types.Candidate, error) {
	for _, t := range m.failTitles {
		if t == title {
			return nil, fmt.Errorf("upstream returned HTTP 500")
		}
	}
	return m.candidates[title], nil
}

// --- Similarity ---

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "deep learning", "deep learning", 1.0},
		{"case and whitespace normalized", "Deep Learning for X", "deep learning for x", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "deep learning", "", 0.0},
		{"disjoint", "aaaa", "bbbb", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a, b := "graph neural networks", "graph neural network"
	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("Similarity is not symmetric for %q / %q", a, b)
	}
	if s := Similarity(a, b); s <= 0 || s >= 1 {
		t.Errorf("near-identical titles should score in (0,1), got %f", s)
	}
}

// --- ResolveMissingIDs ---

func TestResolveMissingIDsFillsFields(t *testing.T) {
	pubs := []types.Publication{
		{ID: "p1", Title: "Deep Learning for X"},
		{ID: "p2", Title: "Unrelated", DOI: "10.1/already"},
	}
	lookup := &mockLookup{candidates: map[string][]types.Candidate{
		"Deep Learning for X": {
			{ID: "W1", DOI: "https://doi.org/10.1/ABC", Title: "deep learning for x"},
		},
	}}

	out, summary := ResolveMissingIDs(context.Background(), pubs, lookup, DefaultConfig(), &bytes.Buffer{})

	if out[0].DOI != "10.1/abc" {
		t.Errorf("DOI = %q, want normalized 10.1/abc", out[0].DOI)
	}
	if out[0].OpenAlexID != "W1" {
		t.Errorf("OpenAlexID = %q, want W1", out[0].OpenAlexID)
	}
	// Rows that already carry a DOI are not looked up.
	if out[1].OpenAlexID != "" {
		t.Errorf("row with DOI should be untouched, got id %q", out[1].OpenAlexID)
	}
	if summary.Resolved != 1 {
		t.Errorf("Resolved = %d, want 1", summary.Resolved)
	}
}

func TestResolveMissingIDsInputUntouched(t *testing.T) {
	pubs := []types.Publication{{ID: "p1", Title: "Deep Learning for X"}}
	lookup := &mockLookup{candidates: map[string][]types.Candidate{
		"Deep Learning for X": {{ID: "W1", DOI: "10.1/abc", Title: "Deep Learning for X"}},
	}}

	ResolveMissingIDs(context.Background(), pubs, lookup, DefaultConfig(), &bytes.Buffer{})

	if pubs[0].DOI != "" || pubs[0].OpenAlexID != "" {
		t.Errorf("input slice was mutated: %+v", pubs[0])
	}
}

func TestResolveMissingIDsSubThreshold(t *testing.T) {
	pubs := []types.Publication{{ID: "p1", Title: "Deep Learning for X"}}
	lookup := &mockLookup{candidates: map[string][]types.Candidate{
		"Deep Learning for X": {{ID: "W1", DOI: "10.1/abc", Title: "something else entirely"}},
	}}

	out, summary := ResolveMissingIDs(context.Background(), pubs, lookup, DefaultConfig(), &bytes.Buffer{})

	if out[0].DOI != "" || out[0].OpenAlexID != "" {
		t.Errorf("sub-threshold candidate must not fill fields: %+v", out[0])
	}
	if summary.Unresolved != 1 {
		t.Errorf("Unresolved = %d, want 1", summary.Unresolved)
	}
}

func TestResolveMissingIDsBoostCrossesThreshold(t *testing.T) {
	// "deep learning for ax" vs "deep learning for x": one edit over 20
	// runes scores 0.95, above the 0.9 default on its own. Use a higher
	// threshold so only the boosted candidate clears it.
	cfg := DefaultConfig()
	cfg.Threshold = 0.97
	pubs := []types.Publication{{ID: "p1", Title: "deep learning for axx"}}
	lookup := &mockLookup{candidates: map[string][]types.Candidate{
		"deep learning for axx": {
			{ID: "W1", DOI: "10.1/plain", Title: "deep learning for x"},
			{ID: "W2", DOI: "10.1/host", Title: "deep learning for ax", CorrespondingHost: true},
		},
	}}

	out, _ := ResolveMissingIDs(context.Background(), pubs, lookup, cfg, &bytes.Buffer{})

	if out[0].DOI != "10.1/host" {
		t.Errorf("boosted corresponding-host candidate should win, got DOI %q", out[0].DOI)
	}
}

// An explicitly configured zero boost is honored: the corresponding-host
// candidate gets no bonus and stays below the threshold.
func TestResolveMissingIDsZeroBoostHonored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = 0.97
	cfg.Boost = 0
	pubs := []types.Publication{{ID: "p1", Title: "deep learning for axx"}}
	lookup := &mockLookup{candidates: map[string][]types.Candidate{
		"deep learning for axx": {
			{ID: "W2", DOI: "10.1/host", Title: "deep learning for ax", CorrespondingHost: true},
		},
	}}

	out, summary := ResolveMissingIDs(context.Background(), pubs, lookup, cfg, &bytes.Buffer{})

	if out[0].DOI != "" {
		t.Errorf("zero boost must not be replaced by the default, got DOI %q", out[0].DOI)
	}
	if summary.Unresolved != 1 {
		t.Errorf("Unresolved = %d, want 1", summary.Unresolved)
	}
}

func TestResolveMissingIDsTieKeepsFirst(t *testing.T) {
	pubs := []types.Publication{{ID: "p1", Title: "deep learning for x"}}
	lookup := &mockLookup{candidates: map[string][]types.Candidate{
		"deep learning for x": {
			{ID: "W1", DOI: "10.1/first", Title: "Deep Learning for X"},
			{ID: "W2", DOI: "10.1/second", Title: "deep learning for x"},
		},
	}}

	out, _ := ResolveMissingIDs(context.Background(), pubs, lookup, DefaultConfig(), &bytes.Buffer{})

	if out[0].DOI != "10.1/first" {
		t.Errorf("tie must keep the earlier candidate, got DOI %q", out[0].DOI)
	}
}

func TestResolveMissingIDsPartialFailure(t *testing.T) {
	pubs := []types.Publication{
		{ID: "p1", Title: "title one"},
		{ID: "p2", Title: "title two"},
		{ID: "p3", Title: "title three"},
	}
	lookup := &mockLookup{
		candidates: map[string][]types.Candidate{
			"title one":   {{ID: "W1", DOI: "10.1/one", Title: "title one"}},
			"title three": {{ID: "W3", DOI: "10.1/three", Title: "title three"}},
		},
		failTitles: []string{"title two"},
	}
	var buf bytes.Buffer

	out, summary := ResolveMissingIDs(context.Background(), pubs, lookup, DefaultConfig(), &buf)

	if out[0].DOI != "10.1/one" || out[2].DOI != "10.1/three" {
		t.Errorf("healthy rows must still resolve: %+v", out)
	}
	if out[1].DOI != "" {
		t.Errorf("failed row must stay unresolved, got DOI %q", out[1].DOI)
	}
	if summary.Failures != 1 || summary.Resolved != 2 {
		t.Errorf("summary = %+v, want 2 resolved / 1 failure", summary)
	}
	if !strings.Contains(buf.String(), "title two") {
		t.Errorf("failure should be logged with the offending title, got %q", buf.String())
	}
}

func TestResolveMissingIDsNilLookup(t *testing.T) {
	pubs := []types.Publication{{ID: "p1", Title: "deep learning"}}
	out, summary := ResolveMissingIDs(context.Background(), pubs, nil, DefaultConfig(), &bytes.Buffer{})
	if out[0].DOI != "" || summary.Resolved != 0 {
		t.Errorf("nil lookup must leave rows unresolved: %+v", out[0])
	}
}
