// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/attribution-engine/pkg/types"
)

// FormatTable writes the enriched publications as a human-readable table.
func FormatTable(rows []types.EnrichedPublication, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No publications.")
		return
	}

	fmt.Fprintf(w, "%-50s  %-22s  %-4s  %-5s  %s\n",
		"Title", "DOI", "Year", "Inst", "Faculties")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range rows {
		title := truncate(r.Title, 50)
		doi := truncate(r.DOI, 22)
		year := ""
		if r.Year > 0 {
			year = fmt.Sprintf("%d", r.Year)
		}
		inst := ""
		if r.InstitutionAuthored {
			inst = "yes"
		}
		fmt.Fprintf(w, "%-50s  %-22s  %-4s  %-5s  %s\n",
			title, doi, year, inst, strings.Join(trueFlags(r.FacultyFlags), ","))
	}
	fmt.Fprintf(w, "\n%d publications\n", len(rows))
}

// FormatJSON writes the enriched publications as indented JSON.
func FormatJSON(rows []types.EnrichedPublication, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// truncate shortens s to max display characters. It counts runes, not
// bytes, so multi-byte titles are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func trueFlags(flags map[string]bool) []string {
	var set []string
	for code, v := range flags {
		if v {
			set = append(set, code)
		}
	}
	sort.Strings(set)
	return set
}
