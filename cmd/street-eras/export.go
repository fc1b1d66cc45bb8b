// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/street-eras/internal/store"
	"github.com/pdiddy/street-eras/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored classifications as CSV, JSON, or YAML",
	Long: `Export reads a city's stored street classifications from the results
database and writes them in the requested format, sorted by street name.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("db", "street-eras.db", "SQLite results database")
	exportCmd.Flags().String("city", "", "city to export (required)")
	exportCmd.Flags().String("format", "csv", "output format: csv, json, or yaml")
	exportCmd.Flags().StringP("output", "o", "", "output file (stdout when empty)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	city, _ := cmd.Flags().GetString("city")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	s, err := store.NewStore(types.StoreConfig{Path: dbPath})
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()

	if city == "" {
		cities, err := s.Cities(ctx)
		if err != nil {
			return err
		}
		if len(cities) == 0 {
			return fmt.Errorf("results database %s is empty", dbPath)
		}
		return fmt.Errorf("--city is required (stored: %s)", strings.Join(cities, ", "))
	}

	mapping, err := s.Load(ctx, city)
	if err != nil {
		return err
	}
	if len(mapping) == 0 {
		return fmt.Errorf("no stored results for %q", city)
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "csv":
		return store.ExportCSV(mapping, w)
	case "json":
		return store.ExportJSON(mapping, w)
	case "yaml":
		return store.ExportYAML(mapping, w)
	default:
		return fmt.Errorf("unknown format %q: use csv, json, or yaml", format)
	}
}
