// Package main implements the academyreport CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "academyreport",
	Short: "Academy evaluation report generator",
	Long:  "Renders bilingual (English/Arabic) football academy evaluation reports as PDF files.",
}

func main() {
	rootCmd.Version = "1.0.0"

	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(fontsCmd)

	rootCmd.PersistentFlags().String("data", "academy.json", "JSON file with players, groups and evaluations")
	rootCmd.PersistentFlags().String("config", "", "TOML config file (default academyreport.toml when present)")
	rootCmd.PersistentFlags().StringP("out", "o", "", "output PDF path (default report-<kind>-<id>.pdf)")
	rootCmd.PersistentFlags().String("fonts", "", "directory searched for report fonts")
	rootCmd.PersistentFlags().String("logo", "", "academy logo image for the report header")
	rootCmd.PersistentFlags().String("letterhead", "", "existing PDF drawn under every report page")
	rootCmd.PersistentFlags().String("generated-at", "", "report timestamp, RFC 3339 (default now)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
