package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/internal/parquet"
	"github.com/pathworks/talentmap/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintDomainResults outputs the domain report, dispatching based on the output format configured.
func PrintDomainResults(report schema.DomainReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeDomainJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeDomainCSVResults(report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteDomainScoresParquet(report, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Printf("💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeDomainTable(report, cfg, fmtFloat, intFmt, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Scoring completed in %v\n", duration)
			return err
		}, "Wrote table")
	}
	return nil
}

// writeDomainJSONResults handles opening the file and calling the JSON writer.
func writeDomainJSONResults(report schema.DomainReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForDomains(w, report)
	}, "Wrote JSON")
}

// writeDomainCSVResults handles opening the file and calling the CSV writer.
func writeDomainCSVResults(report schema.DomainReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForDomains(csvWriter, report, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeDomainTable generates and writes the human-readable table.
func writeDomainTable(report schema.DomainReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Scope", "Key", "Correct", "Answered", "Raw", "Possible", "Percent", "Label"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	data = append(data, domainTableRow("Total", "-", report.Total, cfg, fmtFloat, intFmt, maxWidth))
	for _, a := range report.ByDomain {
		data = append(data, domainTableRow("Domain", a.Key, a, cfg, fmtFloat, intFmt, maxWidth))
	}
	for _, a := range report.BySubDomain {
		data = append(data, domainTableRow("Sub", a.Key, a, cfg, fmtFloat, intFmt, maxWidth))
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d domains and %d sub-domains (overall: %d%%)\n",
		len(report.ByDomain), len(report.BySubDomain), report.Total.Percent); err != nil {
		return err
	}
	return nil
}

func domainTableRow(scope, key string, a schema.Aggregate, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, maxWidth int) []string {
	return []string{
		scope,
		contract.TruncateName(key, maxWidth),
		fmt.Sprintf(intFmt, a.Correct),
		fmt.Sprintf(intFmt, a.Considered),
		fmtFloat(a.Raw),
		fmtFloat(a.Possible),
		strconv.Itoa(a.Percent),
		label(a.Percent, cfg),
	}
}

// writeCSVResultsForDomains writes the domain report in CSV format.
func writeCSVResultsForDomains(w *csv.Writer, report schema.DomainReport, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"scope",
		"key",
		"correct",
		"answered",
		"raw",
		"possible",
		"percent",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	write := func(scope, key string, a schema.Aggregate) error {
		rec := []string{
			scope,
			key,
			fmt.Sprintf(intFmt, a.Correct),
			fmt.Sprintf(intFmt, a.Considered),
			fmtFloat(a.Raw),
			fmtFloat(a.Possible),
			strconv.Itoa(a.Percent),
			contract.GetPlainLabel(a.Percent),
		}
		return w.Write(rec)
	}
	if err := write("total", "total", report.Total); err != nil {
		return err
	}
	for _, a := range report.ByDomain {
		if err := write("domain", a.Key, a); err != nil {
			return err
		}
	}
	for _, a := range report.BySubDomain {
		if err := write("subdomain", a.Key, a); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForDomains writes the domain report in JSON format.
func writeJSONResultsForDomains(w io.Writer, report schema.DomainReport) error {
	// 1. Prepare the data structure for JSON with labels added
	type JSONAggregate struct {
		Label string `json:"label"`
		schema.Aggregate
	}
	type JSONDomainReport struct {
		Total       JSONAggregate   `json:"total"`
		ByDomain    []JSONAggregate `json:"byDomain"`
		BySubDomain []JSONAggregate `json:"bySubDomain"`
	}

	wrap := func(a schema.Aggregate) JSONAggregate {
		return JSONAggregate{Label: contract.GetPlainLabel(a.Percent), Aggregate: a}
	}
	output := JSONDomainReport{Total: wrap(report.Total)}
	for _, a := range report.ByDomain {
		output.ByDomain = append(output.ByDomain, wrap(a))
	}
	for _, a := range report.BySubDomain {
		output.BySubDomain = append(output.BySubDomain, wrap(a))
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
