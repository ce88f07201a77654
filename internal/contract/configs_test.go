package contract

import (
	"testing"

	"github.com/huangsam/sonar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessAndValidate(t *testing.T) {
	original := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdoutIsTerminal = original })

	tests := []struct {
		name        string
		input       *ConfigRawInput
		expectError bool
		errorMsg    string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name:  "defaults",
			input: &ConfigRawInput{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultInputPath, cfg.InputPath)
				assert.Equal(t, schema.TextOut, cfg.Output)
				assert.Empty(t, cfg.OutputFile)
				assert.False(t, cfg.UseColors)
			},
		},
		{
			name:  "input override",
			input: &ConfigRawInput{Input: "  readings.txt "},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "readings.txt", cfg.InputPath)
			},
		},
		{
			name:  "output is case insensitive",
			input: &ConfigRawInput{Output: "JSON", OutputFile: "out.json"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.JSONOut, cfg.Output)
				assert.Equal(t, "out.json", cfg.OutputFile)
			},
		},
		{
			name:  "table output",
			input: &ConfigRawInput{Output: "table", Color: "yes"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.TableOut, cfg.Output)
				assert.True(t, cfg.UseColors)
			},
		},
		{
			name:  "parquet with file",
			input: &ConfigRawInput{Output: "parquet", OutputFile: "counts.parquet"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.ParquetOut, cfg.Output)
			},
		},
		{
			name:        "parquet without file",
			input:       &ConfigRawInput{Output: "parquet"},
			expectError: true,
			errorMsg:    "output-file is required",
		},
		{
			name:        "unknown output",
			input:       &ConfigRawInput{Output: "xml"},
			expectError: true,
			errorMsg:    "invalid output format 'xml'",
		},
		{
			name:        "bad color",
			input:       &ConfigRawInput{Color: "maybe"},
			expectError: true,
			errorMsg:    "invalid --color value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := ProcessAndValidate(cfg, tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{InputPath: "a.txt", Output: schema.TextOut}
	clone := cfg.Clone()
	clone.Output = schema.TableOut

	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, "a.txt", clone.InputPath)
}

func TestProcessAndValidateOnTerminal(t *testing.T) {
	original := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return true }
	t.Cleanup(func() { stdoutIsTerminal = original })

	tests := []struct {
		name      string
		input     *ConfigRawInput
		useColors bool
	}{
		{
			name:      "auto colors stdout",
			input:     &ConfigRawInput{Output: "text"},
			useColors: true,
		},
		{
			name:      "auto skips colors for output file",
			input:     &ConfigRawInput{Output: "text", OutputFile: "counts.txt"},
			useColors: false,
		},
		{
			name:      "explicit auto skips colors for output file",
			input:     &ConfigRawInput{Output: "table", OutputFile: "counts.txt", Color: "AUTO"},
			useColors: false,
		},
		{
			name:      "yes keeps colors for output file",
			input:     &ConfigRawInput{Output: "text", OutputFile: "counts.txt", Color: "yes"},
			useColors: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			require.NoError(t, ProcessAndValidate(cfg, tt.input))
			assert.Equal(t, tt.useColors, cfg.UseColors)
		})
	}
}
