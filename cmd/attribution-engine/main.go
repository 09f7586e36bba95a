// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the attribution-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/attribution-engine/internal/match"
	"github.com/pdiddy/attribution-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the attribution-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "attribution-engine",
	Short: "Faculty-attributed publication table builder",
	Long: `attribution-engine reconciles scholarly-publication metadata harvested
from the institutional repository, OpenAlex, and the staff directory into one
canonical, faculty-attributed publication table.

The run subcommand executes the enrichment pipeline over harvested input
tables; report re-reads the stored result of a previous run.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./attribution-engine.yaml or ~/.config/attribution-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("attribution-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "attribution-engine"))
		}
	}

	viper.SetEnvPrefix("ATTRIBUTION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configuration from viper with the
// documented defaults.
func pipelineConfig() types.PipelineConfig {
	viper.SetDefault("match.threshold", match.DefaultThreshold)
	viper.SetDefault("match.boost", match.DefaultBoost)
	viper.SetDefault("match.max_concurrent_lookups", match.DefaultMaxConcurrentLookups)
	viper.SetDefault("lookup.timeout", 10*time.Second)
	viper.SetDefault("lookup.user_agent", "attribution-engine/"+version)
	viper.SetDefault("lookup.max_results", 10)
	viper.SetDefault("lookup.max_retries", 5)
	viper.SetDefault("store.path", "attribution.db")
	viper.SetDefault("faculties_path", "faculties.yaml")
	viper.SetDefault("corrections_path", "corrections.yaml")

	return types.PipelineConfig{
		Match: types.MatchConfig{
			Threshold:            viper.GetFloat64("match.threshold"),
			Boost:                viper.GetFloat64("match.boost"),
			MaxConcurrentLookups: viper.GetInt("match.max_concurrent_lookups"),
		},
		Lookup: types.LookupConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("lookup.timeout"),
				UserAgent: viper.GetString("lookup.user_agent"),
			},
			Email:      viper.GetString("lookup.email"),
			MaxResults: viper.GetInt("lookup.max_results"),
			MaxRetries: viper.GetInt("lookup.max_retries"),
		},
		Store: types.StoreConfig{
			Path: viper.GetString("store.path"),
		},
		FacultiesPath:   viper.GetString("faculties_path"),
		CorrectionsPath: viper.GetString("corrections_path"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
