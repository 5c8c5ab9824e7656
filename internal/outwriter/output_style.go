package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintStyleResults outputs the learning-style classification, dispatching based on the output format configured.
func PrintStyleResults(style schema.StyleResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeStyleJSONResults(style, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeStyleCSVResults(style, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output supports the domains and clusters commands")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeStyleTable(style, cfg, fmtFloat, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Classification completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
	return nil
}

// writeStyleJSONResults handles opening the file and calling the JSON writer.
func writeStyleJSONResults(style schema.StyleResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, style)
	}, "Wrote JSON")
}

// writeStyleCSVResults handles opening the file and calling the CSV writer.
func writeStyleCSVResults(style schema.StyleResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForStyle(csvWriter, style, fmtFloat)
	}, "Wrote CSV")
}

// writeStyleTable generates and writes the human-readable table.
func writeStyleTable(style schema.StyleResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Channel", "Mean", "Dominant"})

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows in canonical channel order
	var data [][]string
	for _, channel := range schema.ChannelOrder {
		marker := ""
		if style.Dominant != nil && *style.Dominant == channel {
			marker = "✓"
		}
		data = append(data, []string{
			string(channel),
			fmtFloat(style.Channels[channel]),
			marker,
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if style.Dominant == nil {
		if _, err := fmt.Fprintln(writer, "No dominant channel: no mapped item was answered"); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(writer, "Dominant learning style: %s\n", *style.Dominant); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVResultsForStyle writes the classification in CSV format.
func writeCSVResultsForStyle(w *csv.Writer, style schema.StyleResult, fmtFloat func(float64) string) error {
	header := []string{"channel", "mean", "dominant"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, channel := range schema.ChannelOrder {
		dominant := "false"
		if style.Dominant != nil && *style.Dominant == channel {
			dominant = "true"
		}
		rec := []string{
			string(channel),
			fmtFloat(style.Channels[channel]),
			dominant,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
