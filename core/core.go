// Package core has core logic for scoring, ranking and verification.
package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/pathworks/talentmap/core/agg"
	"github.com/pathworks/talentmap/core/algo"
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/internal/dataset"
	"github.com/pathworks/talentmap/internal/outwriter"
	"github.com/pathworks/talentmap/schema"
)

// Result bundles the three engine outputs for one scoring invocation.
// Style is nil when no style map was supplied.
type Result struct {
	Domains  schema.DomainReport   `json:"domains"`
	Clusters []schema.ClusterScore `json:"clusters"`
	Style    *schema.StyleResult   `json:"style,omitempty"`
}

// BuildResult computes the full report from a loaded dataset. It is a pure
// function of the dataset and config; domain aggregation, cluster scoring
// and style classification share no mutable state and could run in any
// order.
func BuildResult(ds *dataset.Dataset, cfg *contract.Config) (*Result, error) {
	if ds.Answers == nil {
		return nil, errors.New("--answers is required")
	}
	if len(ds.Clusters) == 0 {
		return nil, errors.New("--clusters is required")
	}

	res := &Result{}
	res.Domains = agg.AggregateDomains(ds.Bank, ds.Answers)
	res.Clusters = algo.TopClusters(scoreClusters(ds, cfg), cfg.ResultLimit)
	if ds.StyleMap != nil {
		style := algo.ClassifyStyle(ds.StyleMap, ds.Answers)
		res.Style = &style
	}
	return res, nil
}

// scoreClusters runs the configured cluster strategy. The domain-means
// strategy derives its per-domain means from the same answer set, so both
// strategies stay pure functions of (bank, definitions, answers).
func scoreClusters(ds *dataset.Dataset, cfg *contract.Config) []schema.ClusterScore {
	in := algo.ClusterInput{Strategy: cfg.Strategy, Bank: ds.Bank, Answers: ds.Answers}
	if cfg.Strategy == schema.DomainStrategy {
		in.DomainMeans = agg.LikertDomainMeans(ds.Bank, ds.Answers)
	}
	return algo.ScoreClusters(ds.Clusters, in)
}

// ExecuteReport runs the full scoring pipeline and prints the combined
// report. It serves as the main entry point for the 'report' command.
func ExecuteReport(cfg *contract.Config) error {
	start := time.Now()
	ds, err := loadWithIntegrityWarnings(cfg)
	if err != nil {
		return err
	}
	res, err := BuildResult(ds, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(res.Domains, res.Clusters, res.Style, cfg, time.Since(start))
}

// ExecuteDomains runs only the domain aggregation and prints it.
func ExecuteDomains(cfg *contract.Config) error {
	start := time.Now()
	ds, err := loadWithIntegrityWarnings(cfg)
	if err != nil {
		return err
	}
	if ds.Answers == nil {
		return errors.New("--answers is required")
	}
	report := agg.AggregateDomains(ds.Bank, ds.Answers)
	return outwriter.NewOutWriter().WriteDomains(report, cfg, time.Since(start))
}

// ExecuteClusters runs only the cluster scoring and prints the ranking.
func ExecuteClusters(cfg *contract.Config) error {
	start := time.Now()
	ds, err := loadWithIntegrityWarnings(cfg)
	if err != nil {
		return err
	}
	if ds.Answers == nil {
		return errors.New("--answers is required")
	}
	if len(ds.Clusters) == 0 {
		return errors.New("--clusters is required")
	}
	ranked := algo.TopClusters(scoreClusters(ds, cfg), cfg.ResultLimit)
	return outwriter.NewOutWriter().WriteClusters(ranked, cfg, time.Since(start))
}

// ExecuteStyle runs only the learning-style classification and prints it.
func ExecuteStyle(cfg *contract.Config) error {
	start := time.Now()
	ds, err := loadWithIntegrityWarnings(cfg)
	if err != nil {
		return err
	}
	if ds.Answers == nil {
		return errors.New("--answers is required")
	}
	if ds.StyleMap == nil {
		return errors.New("--style-map is required")
	}
	style := algo.ClassifyStyle(ds.StyleMap, ds.Answers)
	return outwriter.NewOutWriter().WriteStyle(style, cfg, time.Since(start))
}

// loadWithIntegrityWarnings loads the dataset and surfaces integrity
// issues as warnings. Scoring proceeds regardless: bad data degrades to
// zero-filled output, it never raises. The 'check' command is the strict
// gate.
func loadWithIntegrityWarnings(cfg *contract.Config) (*dataset.Dataset, error) {
	ds, err := dataset.Load(cfg)
	if err != nil {
		return nil, err
	}
	result := VerifyDataset(ds.Bank, ds.Clusters, ds.StyleMap)
	for _, issue := range result.Issues {
		contract.LogWarn("dataset integrity", fmt.Errorf("%s", issue.Message))
	}
	return ds, nil
}
