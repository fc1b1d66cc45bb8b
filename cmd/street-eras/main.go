// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the street-eras CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the street-eras CLI.
var rootCmd = &cobra.Command{
	Use:   "street-eras",
	Short: "Classify city street names into historical eras",
	Long: `street-eras derives a historical era and naming context for each street
in a city. Street names come from OpenStreetMap via the Overpass API;
each name is resolved to a Wikipedia article, the prose is mined for a
century or year and a justification phrase, and the century is bucketed
into a coarse era. Results can be printed, stored in SQLite, and exported.

Each stage is a subcommand: streets fetches the name list, classify runs
the extraction pipeline, and export reads stored results back out.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./street-eras.yaml or ~/.config/street-eras/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("street-eras")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "street-eras"))
		}
	}

	viper.SetEnvPrefix("STREET_ERAS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
