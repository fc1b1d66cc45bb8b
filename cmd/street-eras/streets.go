// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/street-eras/internal/streets"
	"github.com/pdiddy/street-eras/pkg/types"
)

var streetsCmd = &cobra.Command{
	Use:   "streets",
	Short: "Fetch a city's street names from Overpass",
	Long: `Streets queries the Overpass API for the named ways of a city and
either prints the names or saves them to a YAML street list for later
offline classification runs.`,
	RunE: runStreets,
}

func init() {
	streetsCmd.Flags().String("city", "", "city to fetch street names for (required)")
	streetsCmd.Flags().String("country", "", "country, recorded in the saved list")
	streetsCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	streetsCmd.Flags().StringP("output", "o", "", "YAML file to write the street list to (prints to stdout when empty)")

	rootCmd.AddCommand(streetsCmd)
}

func runStreets(cmd *cobra.Command, args []string) error {
	city, _ := cmd.Flags().GetString("city")
	if city == "" {
		return fmt.Errorf("--city is required")
	}
	country, _ := cmd.Flags().GetString("country")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	output, _ := cmd.Flags().GetString("output")

	cfg := types.StreetsConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
	}
	client := &http.Client{Timeout: timeout}

	names, err := streets.Fetch(context.Background(), client, city, cfg)
	if err != nil {
		return err
	}

	if output == "" {
		for _, name := range names {
			fmt.Println(name)
		}
		fmt.Fprintf(os.Stderr, "\n%d street name(s)\n", len(names))
		return nil
	}

	if err := streets.WriteListFile(output, city, country, names); err != nil {
		return err
	}
	fmt.Printf("%d street name(s) written to %s\n", len(names), output)
	return nil
}
