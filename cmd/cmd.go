// Package cmd defines the command-line interface for talentmap.
package cmd

import (
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(clustersCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("item-bank", "", "Path to the item bank JSON file")
	rootCmd.PersistentFlags().String("clusters", "", "Path to the career cluster definitions JSON file")
	rootCmd.PersistentFlags().String("style-map", "", "Path to the learning-style channel map JSON file")
	rootCmd.PersistentFlags().StringP("answers", "a", "", "Path to the answer set JSON file")
	rootCmd.PersistentFlags().String("strategy", string(schema.ItemStrategy), "Cluster scoring strategy: items or domains")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultClusterLimit, "Number of clusters to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
