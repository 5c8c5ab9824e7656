package cmd

import (
	"github.com/pathworks/talentmap/core"
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/spf13/cobra"
)

// styleCmd classifies the dominant learning style.
var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Classify the dominant learning-style channel.",
	Long: `Compute the mean rating per learning-style channel (visual, auditory,
kinesthetic) from the answer set and report the dominant channel.

Channel membership comes from the style map file; raw answer values are
used as-is, without reverse keying. When two channels tie, the earlier
channel in visual, auditory, kinesthetic order wins.

Examples:
  talentmap style --item-bank bank.json --style-map stylemap.json --answers answers.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStyle(cfg); err != nil {
			contract.LogFatal("Cannot run style classification", err)
		}
	},
}
