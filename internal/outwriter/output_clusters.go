package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/internal/parquet"
	"github.com/pathworks/talentmap/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintClusterResults outputs the ranked clusters, dispatching based on the output format configured.
func PrintClusterResults(scores []schema.ClusterScore, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeClusterJSONResults(scores, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeClusterCSVResults(scores, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteClusterScoresParquet(scores, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Printf("💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeClusterTable(scores, cfg, fmtFloat, intFmt, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Scoring completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
	return nil
}

// writeClusterJSONResults handles opening the file and calling the JSON writer.
func writeClusterJSONResults(scores []schema.ClusterScore, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForClusters(w, scores)
	}, "Wrote JSON")
}

// writeClusterCSVResults handles opening the file and calling the CSV writer.
func writeClusterCSVResults(scores []schema.ClusterScore, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForClusters(csvWriter, scores, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeClusterTable generates and writes the human-readable table.
func writeClusterTable(scores []schema.ClusterScore, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Cluster", "Score", "Percent", "Label", "Basis"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, s := range scores {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(s.Name, maxWidth),
			fmtFloat(s.Score),
			strconv.Itoa(s.Percent),
			label(s.Percent, cfg),
			formatClusterBasis(&s, intFmt),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d clusters (%s strategy)\n", len(scores), cfg.Strategy); err != nil {
		return err
	}
	return nil
}

// formatClusterBasis summarizes what a cluster score was computed from. The
// item strategy reports matched items; the domain-means strategy reports the
// top contributing domains.
func formatClusterBasis(s *schema.ClusterScore, intFmt string) string {
	if len(s.Contributions) == 0 {
		return fmt.Sprintf(intFmt+" items", s.MatchedItems)
	}
	top := s.Contributions
	if len(top) > 2 {
		top = top[:2]
	}
	parts := make([]string, len(top))
	for i, c := range top {
		parts[i] = fmt.Sprintf("%s(%.1f)", c.Domain, c.DomainScore)
	}
	return strings.Join(parts, ", ")
}

// writeCSVResultsForClusters writes the ranked clusters in CSV format.
func writeCSVResultsForClusters(w *csv.Writer, scores []schema.ClusterScore, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"cluster_id",
		"name",
		"score",
		"percent",
		"label",
		"matched_items",
		"contributions",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, s := range scores {
		contribs := make([]string, len(s.Contributions))
		for j, c := range s.Contributions {
			contribs[j] = fmt.Sprintf("%s:%s", c.Domain, fmtFloat(c.Weight))
		}
		rec := []string{
			strconv.Itoa(i + 1),                  // Rank
			s.ID,                                 // Cluster ID
			s.Name,                               // Name
			fmtFloat(s.Score),                    // Score on the 0-5 scale
			strconv.Itoa(s.Percent),              // Percent
			contract.GetPlainLabel(s.Percent),    // Label
			fmt.Sprintf(intFmt, s.MatchedItems),  // Matched items (item strategy)
			strings.Join(contribs, "|"),          // Domain weights (domain strategy)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForClusters writes the ranked clusters in JSON format.
func writeJSONResultsForClusters(w io.Writer, scores []schema.ClusterScore) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONClusterScore struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ClusterScore
	}

	output := make([]JSONClusterScore, len(scores))
	for i, s := range scores {
		output[i] = JSONClusterScore{
			Rank:         i + 1,
			Label:        contract.GetPlainLabel(s.Percent),
			ClusterScore: s,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
