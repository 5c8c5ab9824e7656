// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the combined scoring report using the configured output format.
func (ow *OutWriter) WriteReport(domains schema.DomainReport, clusters []schema.ClusterScore, style *schema.StyleResult, cfg *contract.Config, duration time.Duration) error {
	return PrintReportResults(domains, clusters, style, cfg, duration)
}

// WriteDomains prints domain aggregation results using the configured output format.
func (ow *OutWriter) WriteDomains(report schema.DomainReport, cfg *contract.Config, duration time.Duration) error {
	return PrintDomainResults(report, cfg, duration)
}

// WriteClusters prints ranked cluster results using the configured output format.
func (ow *OutWriter) WriteClusters(scores []schema.ClusterScore, cfg *contract.Config, duration time.Duration) error {
	return PrintClusterResults(scores, cfg, duration)
}

// WriteStyle prints the learning-style classification using the configured output format.
func (ow *OutWriter) WriteStyle(style schema.StyleResult, cfg *contract.Config, duration time.Duration) error {
	return PrintStyleResults(style, cfg, duration)
}

// GetMaxTableNameWidth calculates the maximum width for domain and cluster
// names in table output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with table formatting:
	// Rank + Score + Percent + Label with borders and padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 50 {
		return 50
	}
	return available
}

// label picks the colored or plain aptitude label for a percent score.
func label(percent int, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(percent)
	}
	return contract.GetPlainLabel(percent)
}
