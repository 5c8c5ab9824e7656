package cmd

import (
	"github.com/pathworks/talentmap/core"
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/spf13/cobra"
)

// clustersCmd ranks career clusters by fit.
var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Rank career clusters by fit for an answer set.",
	Long: `Score every defined career cluster against an answer set and print
the top matches.

Two strategies are available:
- items:   score the items tagged to each cluster directly, falling back
           to domain membership for untagged clusters
- domains: combine per-domain likert means using each cluster's domain
           weights, with optional RIASEC trait terms

Examples:
  # Top 5 clusters with the item strategy
  talentmap clusters --item-bank bank.json --clusters clusters.json --answers answers.json

  # Weighted domain means, top 10
  talentmap clusters --item-bank bank.json --clusters clusters.json \
    --answers answers.json --strategy domains --limit 10`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteClusters(cfg); err != nil {
			contract.LogFatal("Cannot run cluster ranking", err)
		}
	},
}
