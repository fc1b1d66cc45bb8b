package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of street-eras",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("street-eras %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
