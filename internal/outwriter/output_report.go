package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/schema"
)

// PrintReportResults outputs the combined report, dispatching based on the output format configured.
// The report stitches the domain, cluster and style sections into one document.
func PrintReportResults(domains schema.DomainReport, clusters []schema.ClusterScore, style *schema.StyleResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(domains, clusters, style, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(domains, clusters, style, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return errors.New("parquet output supports the domains and clusters commands")
	default:
		// Default to human-readable tables, one section at a time
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(domains, clusters, style, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote report")
	}
	return nil
}

// writeReportTables renders the three report sections as stacked tables.
func writeReportTables(domains schema.DomainReport, clusters []schema.ClusterScore, style *schema.StyleResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Aptitude Domains:"); err != nil {
		return err
	}
	if err := writeDomainTable(domains, cfg, fmtFloat, intFmt, w); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\nCareer Clusters:"); err != nil {
		return err
	}
	if err := writeClusterTable(clusters, cfg, fmtFloat, intFmt, w); err != nil {
		return err
	}

	if style != nil {
		if _, err := fmt.Fprintln(w, "\nLearning Style:"); err != nil {
			return err
		}
		if err := writeStyleTable(*style, cfg, fmtFloat, w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nReport completed in %v\n", duration)
	return err
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(domains schema.DomainReport, clusters []schema.ClusterScore, style *schema.StyleResult, cfg *contract.Config) error {
	type JSONReport struct {
		Domains  schema.DomainReport   `json:"domains"`
		Clusters []schema.ClusterScore `json:"clusters"`
		Style    *schema.StyleResult   `json:"style,omitempty"`
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, JSONReport{Domains: domains, Clusters: clusters, Style: style})
	}, "Wrote JSON")
}

// writeReportCSVResults flattens all report sections into one CSV stream
// with a leading section column, suitable for spreadsheet import.
func writeReportCSVResults(domains schema.DomainReport, clusters []schema.ClusterScore, style *schema.StyleResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		header := []string{"section", "key", "score", "percent", "label"}
		if err := csvWriter.Write(header); err != nil {
			return err
		}

		writeAgg := func(section, key string, a schema.Aggregate) error {
			return csvWriter.Write([]string{
				section,
				key,
				fmtFloat(a.Raw),
				strconv.Itoa(a.Percent),
				contract.GetPlainLabel(a.Percent),
			})
		}
		if err := writeAgg("total", "total", domains.Total); err != nil {
			return err
		}
		for _, a := range domains.ByDomain {
			if err := writeAgg("domain", a.Key, a); err != nil {
				return err
			}
		}
		for _, a := range domains.BySubDomain {
			if err := writeAgg("subdomain", a.Key, a); err != nil {
				return err
			}
		}
		for _, s := range clusters {
			rec := []string{
				"cluster",
				s.ID,
				fmtFloat(s.Score),
				strconv.Itoa(s.Percent),
				contract.GetPlainLabel(s.Percent),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		if style != nil {
			for _, channel := range schema.ChannelOrder {
				dominant := ""
				if style.Dominant != nil && *style.Dominant == channel {
					dominant = "dominant"
				}
				rec := []string{
					"style",
					string(channel),
					fmtFloat(style.Channels[channel]),
					"",
					dominant,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	}, "Wrote CSV")
}
