package cmd

import (
	"github.com/pathworks/talentmap/core"
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/spf13/cobra"
)

// domainsCmd aggregates answers into domain mastery scores.
var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Show aptitude domain and sub-domain mastery scores.",
	Long: `Aggregate an answer set into mastery percentages per aptitude domain
and sub-domain, plus an overall total.

Objective items earn their full weighted score when the answer matches;
likert items earn their weighted rating, with reverse-keyed items flipped
onto the same scale. Unanswered items contribute nothing to either side
of the percentage.

Examples:
  # Domain breakdown as a table
  talentmap domains --item-bank bank.json --answers answers.json

  # Export per-domain rows for analytics
  talentmap domains --item-bank bank.json --answers answers.json \
    --output parquet --output-file domains.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDomains(cfg); err != nil {
			contract.LogFatal("Cannot run domain scoring", err)
		}
	},
}
