// Package config loads balatrobot settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/balatrobot/internal/hand"
	"github.com/lox/balatrobot/internal/strategy"
)

// Config represents the complete configuration file
type Config struct {
	Strategy *StrategySettings `hcl:"strategy,block"`
	Log      *LogSettings      `hcl:"log,block"`
	Batch    *BatchSettings    `hcl:"batch,block"`
}

// StrategySettings configures the hand planner
type StrategySettings struct {
	PlayAtLeast string `hcl:"play_at_least,optional"`
	MaxDiscard  int    `hcl:"max_discard,optional"`
	MaxPlay     int    `hcl:"max_play,optional"`
}

// LogSettings configures logging output
type LogSettings struct {
	Level string `hcl:"level,optional"`
	JSON  bool   `hcl:"json,optional"`
}

// BatchSettings configures batch evaluation
type BatchSettings struct {
	Workers int `hcl:"workers,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. The filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := strategy.DefaultConfig()
	if c.Strategy == nil {
		c.Strategy = &StrategySettings{}
	}
	if c.Strategy.PlayAtLeast == "" {
		c.Strategy.PlayAtLeast = defaults.PlayAtLeast.String()
	}
	if c.Strategy.MaxDiscard == 0 {
		c.Strategy.MaxDiscard = defaults.MaxDiscard
	}
	if c.Strategy.MaxPlay == 0 {
		c.Strategy.MaxPlay = defaults.MaxPlay
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Batch == nil {
		c.Batch = &BatchSettings{}
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = 4
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.StrategyConfig(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch: workers must be positive, got %d", c.Batch.Workers)
	}
	return nil
}

// StrategyConfig converts the strategy block into a planner config.
func (c *Config) StrategyConfig() (strategy.Config, error) {
	category, err := hand.ParseCategory(c.Strategy.PlayAtLeast)
	if err != nil {
		return strategy.Config{}, fmt.Errorf("strategy: %w", err)
	}
	sc := strategy.Config{
		PlayAtLeast: category,
		MaxDiscard:  c.Strategy.MaxDiscard,
		MaxPlay:     c.Strategy.MaxPlay,
	}
	if err := sc.Validate(); err != nil {
		return strategy.Config{}, fmt.Errorf("strategy: %w", err)
	}
	return sc, nil
}
