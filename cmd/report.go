package cmd

import (
	"github.com/pathworks/talentmap/core"
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd runs the full scoring pipeline.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Score an answer set and print the full assessment report.",
	Long: `Score a learner's answer set against the item bank and print every
section of the assessment report:
- Aptitude domain and sub-domain mastery scores
- Career clusters ranked by fit
- Dominant learning style (when a style map is configured)

Integrity issues in the dataset are reported as warnings; scoring always
proceeds and degrades to zero-filled results rather than failing.

Examples:
  # Full report with the default item strategy
  talentmap report --item-bank bank.json --clusters clusters.json --answers answers.json

  # Use domain means for cluster scoring and include learning style
  talentmap report --item-bank bank.json --clusters clusters.json \
    --style-map stylemap.json --answers answers.json --strategy domains

  # Export the report as JSON for downstream tooling
  talentmap report --item-bank bank.json --clusters clusters.json \
    --answers answers.json --output json --output-file report.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(cfg); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
