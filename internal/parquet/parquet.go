// Package parquet provides data structures and functions for exporting
// assessment scoring data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/schema"
)

// DomainScoreRow is one domain aggregate in a flat, analytics-friendly
// shape. Rows carry the scoring timestamp so multiple exports can be
// appended into the same analytical store.
type DomainScoreRow struct {
	// ScoredAt is when this scoring run produced the row
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// Scope distinguishes total, domain and sub-domain rows
	Scope string `parquet:"scope,snappy"`

	// Key is the domain or sub-domain name; "total" for the overall row
	Key string `parquet:"key,snappy"`

	// Correct is the number of objective items answered correctly
	Correct int32 `parquet:"correct,snappy"`

	// Considered is the number of answered items in scope
	Considered int32 `parquet:"considered,snappy"`

	// Raw is the weighted points earned
	Raw float64 `parquet:"raw,snappy"`

	// Possible is the weighted points available over answered items
	Possible float64 `parquet:"possible,snappy"`

	// Percent is the rounded 0-100 mastery score
	Percent int32 `parquet:"percent,snappy"`

	// Label is the aptitude bucket for the percent score
	Label string `parquet:"label,snappy"`
}

// ClusterScoreRow is one ranked career cluster in a flat shape.
type ClusterScoreRow struct {
	// ScoredAt is when this scoring run produced the row
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// Rank is the 1-based position in the ranking
	Rank int32 `parquet:"rank,snappy"`

	// ClusterID is the stable cluster identifier
	ClusterID string `parquet:"cluster_id,snappy"`

	// Name is the display name of the cluster
	Name string `parquet:"name,snappy"`

	// Score is the normalized 0-5 cluster score
	Score float64 `parquet:"score,snappy"`

	// Percent is the rounded 0-100 fit score
	Percent int32 `parquet:"percent,snappy"`

	// MatchedItems is how many answered items contributed
	MatchedItems int32 `parquet:"matched_items,snappy"`

	// Label is the aptitude bucket for the percent score
	Label string `parquet:"label,snappy"`
}

// WriteDomainScoresParquet writes a domain report to a Parquet file.
func WriteDomainScoresParquet(report schema.DomainReport, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the DomainScoreRow struct tags
	writer := parquet.NewGenericWriter[DomainScoreRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(ConvertDomainReport(report)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteClusterScoresParquet writes ranked cluster scores to a Parquet file.
func WriteClusterScoresParquet(scores []schema.ClusterScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ClusterScoreRow struct tags
	writer := parquet.NewGenericWriter[ClusterScoreRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(ConvertClusterScores(scores)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertDomainReport flattens a domain report into export rows. The total
// row comes first, then domains, then sub-domains, preserving report order.
func ConvertDomainReport(report schema.DomainReport) []DomainScoreRow {
	now := time.Now()
	rows := make([]DomainScoreRow, 0, 1+len(report.ByDomain)+len(report.BySubDomain))

	rows = append(rows, domainRow(now, "total", report.Total))
	for _, a := range report.ByDomain {
		rows = append(rows, domainRow(now, "domain", a))
	}
	for _, a := range report.BySubDomain {
		rows = append(rows, domainRow(now, "subdomain", a))
	}
	return rows
}

// ConvertClusterScores flattens ranked cluster scores into export rows.
func ConvertClusterScores(scores []schema.ClusterScore) []ClusterScoreRow {
	now := time.Now()
	rows := make([]ClusterScoreRow, len(scores))
	for i, s := range scores {
		rows[i] = ClusterScoreRow{
			ScoredAt:     now,
			Rank:         int32(i + 1),
			ClusterID:    s.ID,
			Name:         s.Name,
			Score:        s.Score,
			Percent:      int32(s.Percent),
			MatchedItems: int32(s.MatchedItems),
			Label:        contract.GetPlainLabel(s.Percent),
		}
	}
	return rows
}

func domainRow(scoredAt time.Time, scope string, a schema.Aggregate) DomainScoreRow {
	key := a.Key
	if key == "" {
		key = scope
	}
	return DomainScoreRow{
		ScoredAt:   scoredAt,
		Scope:      scope,
		Key:        key,
		Correct:    int32(a.Correct),
		Considered: int32(a.Considered),
		Raw:        a.Raw,
		Possible:   a.Possible,
		Percent:    int32(a.Percent),
		Label:      contract.GetPlainLabel(a.Percent),
	}
}
