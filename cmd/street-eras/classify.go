// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/street-eras/internal/lookup"
	"github.com/pdiddy/street-eras/internal/pipeline"
	"github.com/pdiddy/street-eras/internal/store"
	"github.com/pdiddy/street-eras/internal/streets"
	"github.com/pdiddy/street-eras/internal/wiki"
	"github.com/pdiddy/street-eras/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "street-eras/0.1"
	defaultRateRPS   = 5.0
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a city's street names into historical eras",
	Long: `Classify fetches the city's street names (or loads them from a saved
street list), resolves each to a Wikipedia article in parallel, extracts a
century or year plus a naming-context phrase from the prose, and prints the
resulting era table. Streets whose lookup fails permanently are skipped,
not recorded.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("city", "", "city whose streets to classify (required unless --streets-file carries one)")
	classifyCmd.Flags().String("country", "", "country, recorded in saved street lists")
	classifyCmd.Flags().Int("workers", types.DefaultWorkers, "worker pool size")
	classifyCmd.Flags().Int("limit", types.DefaultLimit, "maximum number of streets submitted for lookup")
	classifyCmd.Flags().Int("max-retries", types.DefaultMaxRetries, "retry attempts per query after a transient failure")
	classifyCmd.Flags().Int("max-disambiguation", types.DefaultMaxDisambiguation, "disambiguation depth per street")
	classifyCmd.Flags().Duration("backoff-low", types.DefaultBackoffLow, "lower bound of the random retry delay")
	classifyCmd.Flags().Duration("backoff-high", types.DefaultBackoffHigh, "upper bound of the random retry delay")
	classifyCmd.Flags().Float64("rate-limit", defaultRateRPS, "global knowledge-source requests per second (<=0 disables)")
	classifyCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	classifyCmd.Flags().String("streets-file", "", "load street names from a saved YAML list instead of Overpass")
	classifyCmd.Flags().String("save-streets", "", "write the fetched street list to a YAML file")
	classifyCmd.Flags().String("db", "", "SQLite database to store results in (skipped when empty)")
	classifyCmd.Flags().String("csv", "", "write results to a CSV file")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	city, _ := cmd.Flags().GetString("city")
	country, _ := cmd.Flags().GetString("country")
	streetsFile, _ := cmd.Flags().GetString("streets-file")
	saveStreets, _ := cmd.Flags().GetString("save-streets")
	dbPath, _ := cmd.Flags().GetString("db")
	csvPath, _ := cmd.Flags().GetString("csv")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	lookupCfg := types.LookupConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
	}
	lookupCfg.MaxRetries, _ = cmd.Flags().GetInt("max-retries")
	lookupCfg.MaxDisambiguation, _ = cmd.Flags().GetInt("max-disambiguation")
	lookupCfg.BackoffLow, _ = cmd.Flags().GetDuration("backoff-low")
	lookupCfg.BackoffHigh, _ = cmd.Flags().GetDuration("backoff-high")
	lookupCfg.RateLimitRPS, _ = cmd.Flags().GetFloat64("rate-limit")
	if err := lookupCfg.Validate(); err != nil {
		return err
	}

	pipeCfg := types.PipelineConfig{}
	pipeCfg.Workers, _ = cmd.Flags().GetInt("workers")
	pipeCfg.Limit, _ = cmd.Flags().GetInt("limit")

	ctx := context.Background()

	names, city, err := streetNames(ctx, city, streetsFile, timeout)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no street names found for %q", city)
	}
	fmt.Fprintf(os.Stdout, "%d street name(s) for %s\n", len(names), city)

	if saveStreets != "" {
		if err := streets.WriteListFile(saveStreets, city, country, names); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "street list saved to %s\n", saveStreets)
	}

	resolver := lookup.NewResolver(wiki.NewClient(lookupCfg), lookupCfg)
	mapping, summary := pipeline.Run(ctx, resolver, names, city, pipeCfg, os.Stdout)

	fmt.Fprintln(os.Stdout)
	pipeline.FormatTable(mapping, os.Stdout)

	if dbPath != "" {
		if err := saveMapping(ctx, dbPath, city, mapping); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "results stored in %s\n", dbPath)
	}

	if csvPath != "" {
		if err := writeCSV(csvPath, mapping); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "results written to %s\n", csvPath)
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d street(s) failed classification", summary.Failed)
	}
	return nil
}

// streetNames returns the street list and the effective city, either from
// a saved list file or from Overpass.
func streetNames(ctx context.Context, city, streetsFile string, timeout time.Duration) ([]string, string, error) {
	if streetsFile != "" {
		lf, err := streets.ReadListFile(streetsFile)
		if err != nil {
			return nil, "", err
		}
		if city == "" {
			city = lf.City
		}
		if city == "" {
			return nil, "", fmt.Errorf("street list %s carries no city: pass --city", streetsFile)
		}
		return lf.Names, city, nil
	}

	if city == "" {
		return nil, "", fmt.Errorf("--city is required")
	}

	cfg := types.StreetsConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
	}
	client := &http.Client{Timeout: timeout}
	names, err := streets.Fetch(ctx, client, city, cfg)
	if err != nil {
		return nil, "", err
	}
	return names, city, nil
}

func saveMapping(ctx context.Context, dbPath, city string, mapping types.ResultMapping) error {
	s, err := store.NewStore(types.StoreConfig{Path: dbPath})
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Save(ctx, city, mapping)
}

func writeCSV(path string, mapping types.ResultMapping) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return store.ExportCSV(mapping, f)
}
