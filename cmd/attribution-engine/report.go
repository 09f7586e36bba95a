// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/attribution-engine/internal/aggregate"
	"github.com/pdiddy/attribution-engine/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the enriched publication table from the last run",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		pubs, err := s.Publications(context.Background())
		if err != nil {
			return err
		}

		if asJSON {
			return aggregate.FormatJSON(pubs, cmd.OutOrStdout())
		}
		aggregate.FormatTable(pubs, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(reportCmd)
}
