package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/aggregator"
	"github.com/sumantkashyav/Log-Analysis-Script/internal/report"
)

// Config holds everything one run needs. A run is a pure function of
// (input directory, Config) to (output directory contents).
type Config struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
	Format string `mapstructure:"format"`

	// EntityKeys enables per-entity counting (e.g. UserID) when non-empty.
	EntityKeys []string `mapstructure:"entities"`

	// Threshold > 0 flags entity values with more ERROR records than this.
	Threshold int `mapstructure:"threshold"`

	Recursive bool   `mapstructure:"recursive"`
	Quiet     bool   `mapstructure:"quiet"`
	LogFile   string `mapstructure:"log_file"`
}

// SetDefaults registers the default values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "data/")
	v.SetDefault("output", "results/")
	v.SetDefault("format", "csv")
	v.SetDefault("threshold", 0)
	v.SetDefault("recursive", false)
	v.SetDefault("quiet", false)
}

// Load materializes the Config from a viper instance (config file, env and
// flags already merged by the caller).
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unsupported options before any input file is opened.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("invalid configuration: input path is empty")
	}
	if c.Output == "" {
		return fmt.Errorf("invalid configuration: output path is empty")
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("invalid configuration: threshold must be >= 0, got %d", c.Threshold)
	}
	if c.Threshold > 0 && len(c.EntityKeys) == 0 {
		return fmt.Errorf("invalid configuration: threshold requires at least one entity key")
	}
	if err := aggregator.ValidateKeys(c.EntityKeys); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
