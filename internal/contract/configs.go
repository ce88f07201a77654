package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/sonar/schema"
)

// DefaultInputPath is the readings file read by every sweep.
// Release builds may override it with -ldflags "-X".
var DefaultInputPath = "../aoc-rs/input/2021/day1.txt"

// DefaultColor is the default value of the color setting.
const DefaultColor = "auto"

// Config holds the runtime configuration for a sweep.
// This struct is the "final, validated" config.
type Config struct {
	InputPath  string
	Output     schema.OutputMode
	OutputFile string
	UseColors  bool // Enable colored header in text output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// Only settable from the config file or SONAR_INPUT, never from a flag
	Input string `mapstructure:"input"`

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Color      string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateOutput(cfg, input); err != nil {
		return err
	}
	if err := processColor(cfg, input); err != nil {
		return err
	}
	processInputPath(cfg, input)
	return nil
}

// validateOutput checks the output format and its file requirements.
func validateOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)

	mode := strings.ToLower(strings.TrimSpace(input.Output))
	if mode == "" {
		mode = string(schema.TextOut)
	}
	cfg.Output = schema.OutputMode(mode)
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, table, csv, json, parquet", input.Output)
	}

	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("output-file is required when using %s output", schema.ParquetOut)
	}
	return nil
}

// processColor resolves the color setting, consulting the terminal for "auto".
// Output sent to a file is never colored under "auto", since it skips stdout.
// It must run after validateOutput has set cfg.OutputFile.
func processColor(cfg *Config, input *ConfigRawInput) error {
	value := strings.TrimSpace(input.Color)
	if value == "" {
		value = DefaultColor
	}
	if strings.EqualFold(value, DefaultColor) && cfg.OutputFile != "" {
		cfg.UseColors = false
		return nil
	}
	colors, err := ParseColorString(value)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors
	return nil
}

// processInputPath falls back to DefaultInputPath when no override is present.
func processInputPath(cfg *Config, input *ConfigRawInput) {
	cfg.InputPath = strings.TrimSpace(input.Input)
	if cfg.InputPath == "" {
		cfg.InputPath = DefaultInputPath
	}
}
