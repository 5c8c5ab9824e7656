// Package dataset loads the item bank, cluster definitions, learning-style
// map and answer sets from their JSON files. Loading is the only place the
// engine's inputs touch the filesystem; everything downstream is pure.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/schema"
)

// Dataset bundles the inputs for one scoring invocation. The bank, cluster
// definitions and style map are immutable once loaded and safe to share
// across concurrent runs.
type Dataset struct {
	Bank     *schema.Bank
	Clusters []schema.ClusterDef
	StyleMap schema.StyleMap
	Answers  schema.AnswerSet
}

// Load reads every dataset file named in the config. The clusters, style
// map and answers files are optional at this layer; commands that need one
// of them validate its presence themselves.
func Load(cfg *contract.Config) (*Dataset, error) {
	ds := &Dataset{}

	bank, err := LoadItemBank(cfg.ItemBankPath)
	if err != nil {
		return nil, err
	}
	ds.Bank = bank

	if cfg.ClustersPath != "" {
		defs, err := LoadClusters(cfg.ClustersPath)
		if err != nil {
			return nil, err
		}
		ds.Clusters = defs
	}
	if cfg.StyleMapPath != "" {
		styleMap, err := LoadStyleMap(cfg.StyleMapPath)
		if err != nil {
			return nil, err
		}
		ds.StyleMap = styleMap
	}
	if cfg.AnswersPath != "" {
		answers, err := LoadAnswers(cfg.AnswersPath)
		if err != nil {
			return nil, err
		}
		ds.Answers = answers
	}
	return ds, nil
}

// LoadItemBank reads, validates and kind-resolves an item bank file.
func LoadItemBank(path string) (*schema.Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read item bank: %w", err)
	}
	if err := validateDocument("item bank", itemBankSchema, data); err != nil {
		return nil, err
	}
	var items []schema.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("cannot decode item bank: %w", err)
	}
	return schema.NewBank(items), nil
}

// LoadClusters reads and validates a cluster definitions file.
func LoadClusters(path string) ([]schema.ClusterDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read cluster definitions: %w", err)
	}
	if err := validateDocument("cluster definitions", clustersSchema, data); err != nil {
		return nil, err
	}
	var defs []schema.ClusterDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("cannot decode cluster definitions: %w", err)
	}
	return defs, nil
}

// LoadStyleMap reads and validates a learning-style channel map file.
func LoadStyleMap(path string) (schema.StyleMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read style map: %w", err)
	}
	if err := validateDocument("style map", styleMapSchema, data); err != nil {
		return nil, err
	}
	var styleMap schema.StyleMap
	if err := json.Unmarshal(data, &styleMap); err != nil {
		return nil, fmt.Errorf("cannot decode style map: %w", err)
	}
	return styleMap, nil
}

// LoadAnswers reads an answer set file. Answer values are free-form JSON
// scalars, so there is no schema document; only the id keys are checked.
func LoadAnswers(path string) (schema.AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read answers: %w", err)
	}
	answers, err := schema.ParseAnswerSet(data)
	if err != nil {
		return nil, err
	}
	return answers, nil
}
