// Package contract provides the validated configuration and shared
// utilities for internal architecture.
package contract

import (
	"errors"
	"fmt"

	"github.com/pathworks/talentmap/schema"
)

// Default values for configuration.
const (
	DefaultClusterLimit = 5 // Natural top list for the CLI
	DefaultMCPLimit     = 3 // Recommendation count for agent tools
	MaxClusterLimit     = 100
	DefaultPrecision    = 1
)

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config: dataset paths have
// been checked, enums parsed, and limits clamped. It is threaded explicitly
// into every executor; there are no process-wide dataset singletons, so two
// concurrent runs may use entirely different datasets.
type Config struct {
	ItemBankPath string // Path to the item bank JSON file
	ClustersPath string // Path to the cluster definitions JSON file
	StyleMapPath string // Path to the learning-style channel map JSON file, optional
	AnswersPath  string // Path to the learner's answer set JSON file

	Strategy    schema.ClusterStrategy // Cluster scoring strategy
	ResultLimit int                    // Maximum number of clusters to show
	Precision   int                    // Decimal precision for numeric columns
	Output      schema.OutputMode      // Output format
	OutputFile  string                 // Optional path to write output to
	Width       int                    // Terminal width override (0 = auto-detect)
	UseColors   bool                   // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct; ProcessAndValidate turns it
// into a Config.
type ConfigRawInput struct {
	ItemBank   string `mapstructure:"item-bank"`
	Clusters   string `mapstructure:"clusters"`
	StyleMap   string `mapstructure:"style-map"`
	Answers    string `mapstructure:"answers"`
	Strategy   string `mapstructure:"strategy"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// ProcessAndValidate populates cfg from the raw input, parsing enums and
// clamping limits. Dataset files are not opened here; the loader reports
// missing or malformed files with more context than a stat check would.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.ItemBank == "" {
		return errors.New("an item bank file is required (--item-bank)")
	}
	cfg.ItemBankPath = input.ItemBank
	cfg.ClustersPath = input.Clusters
	cfg.StyleMapPath = input.StyleMap
	cfg.AnswersPath = input.Answers

	switch schema.ClusterStrategy(input.Strategy) {
	case schema.ItemStrategy, schema.DomainStrategy:
		cfg.Strategy = schema.ClusterStrategy(input.Strategy)
	case "":
		cfg.Strategy = schema.ItemStrategy
	default:
		return fmt.Errorf("invalid strategy %q (expected %s or %s)",
			input.Strategy, schema.ItemStrategy, schema.DomainStrategy)
	}

	switch schema.OutputMode(input.Output) {
	case schema.TextOut, schema.JSONOut, schema.CSVOut, schema.ParquetOut:
		cfg.Output = schema.OutputMode(input.Output)
	case "":
		cfg.Output = schema.TextOut
	default:
		return fmt.Errorf("invalid output mode %q", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}

	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultClusterLimit
	}
	if cfg.ResultLimit > MaxClusterLimit {
		cfg.ResultLimit = MaxClusterLimit
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > 4 {
		cfg.Precision = DefaultPrecision
	}

	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// Clone returns a copy of the Config struct. Config carries only value
// fields, so a shallow copy is a deep copy; MCP handlers clone the base
// config before applying per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
