// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/attribution-engine/internal/aggregate"
	"github.com/pdiddy/attribution-engine/internal/corrections"
	"github.com/pdiddy/attribution-engine/internal/ingest"
	"github.com/pdiddy/attribution-engine/internal/match"
	"github.com/pdiddy/attribution-engine/internal/openalex"
	"github.com/pdiddy/attribution-engine/internal/pipeline"
	"github.com/pdiddy/attribution-engine/internal/store"
	"github.com/pdiddy/attribution-engine/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the enrichment pipeline over harvested input tables",
	Long: `Run loads the harvested publication, author, and organization tables,
resolves the organization hierarchy, attributes authors to faculties, applies
manual corrections, resolves missing identifiers against OpenAlex, and writes
the deduplicated, enriched result to the local store.`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().String("publications", "publications.json", "harvested publications table (JSON)")
	runCmd.Flags().String("authors", "authors.json", "harvested authors table (JSON)")
	runCmd.Flags().String("organizations", "organizations.json", "harvested organizations table (JSON)")
	runCmd.Flags().Bool("skip-lookup", false, "skip OpenAlex identifier resolution")
	runCmd.Flags().Bool("json", false, "print the enriched publications as JSON")

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	pubsPath, _ := cmd.Flags().GetString("publications")
	authorsPath, _ := cmd.Flags().GetString("authors")
	orgsPath, _ := cmd.Flags().GetString("organizations")
	skipLookup, _ := cmd.Flags().GetBool("skip-lookup")
	asJSON, _ := cmd.Flags().GetBool("json")

	in, mapping, rules, err := loadInputs(pubsPath, authorsPath, orgsPath, cfg)
	if err != nil {
		return err
	}

	var lookup match.Lookup
	if !skipLookup {
		lookup = openalex.NewClient(cfg.Lookup, mapping.OpenAlexInstitutionID)
	}

	ctx := context.Background()
	out, err := pipeline.Run(ctx, in, mapping, rules, lookup, cfg.Match, os.Stderr)
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.SaveResults(ctx, out.Publications, out.Authors); err != nil {
		return fmt.Errorf("saving results: %w", err)
	}

	if asJSON {
		if err := aggregate.FormatJSON(out.Publications, os.Stdout); err != nil {
			return err
		}
	} else {
		aggregate.FormatTable(out.Publications, os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "resolved: %d, unresolved: %d, lookup failures: %d, duplicates removed: %d\n",
		out.Resolved, out.Unresolved, out.LookupFailures, out.DupsRemoved)
	return nil
}

func loadInputs(pubsPath, authorsPath, orgsPath string, cfg types.PipelineConfig) (pipeline.Input, types.FacultyMapping, []types.CorrectionRule, error) {
	var in pipeline.Input
	var err error

	if in.Publications, err = ingest.LoadPublications(pubsPath); err != nil {
		return in, types.FacultyMapping{}, nil, err
	}
	if in.Authors, err = ingest.LoadAuthors(authorsPath); err != nil {
		return in, types.FacultyMapping{}, nil, err
	}
	if in.Organizations, err = ingest.LoadOrganizations(orgsPath); err != nil {
		return in, types.FacultyMapping{}, nil, err
	}

	mapping, err := ingest.LoadFacultyMapping(cfg.FacultiesPath)
	if err != nil {
		return in, mapping, nil, err
	}

	// The corrections file is optional; a missing file means no overrides.
	var rules []types.CorrectionRule
	if _, statErr := os.Stat(cfg.CorrectionsPath); statErr == nil {
		if rules, err = corrections.Load(cfg.CorrectionsPath); err != nil {
			return in, mapping, nil, err
		}
	}
	return in, mapping, rules, nil
}
