package cmd

import (
	"github.com/pathworks/talentmap/core"
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd verifies dataset integrity for CI/CD gating.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify dataset integrity and fail on errors.",
	Long: `Cross-check the item bank, cluster definitions and style map and
report every integrity issue found.

Errors (duplicate item ids, objective items without a correct answer,
clusters with no scoring basis) exit non-zero so the command can gate a
content pipeline. Warnings (unknown cluster references, domains with no
items) are informational only.

Examples:
  # Gate a content repository in CI
  talentmap check --item-bank bank.json --clusters clusters.json --style-map stylemap.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(cfg); err != nil {
			contract.LogFatal("Cannot run integrity check", err)
		}
	},
}
