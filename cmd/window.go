package cmd

import (
	"fmt"

	"github.com/huangsam/sonar/core"
	"github.com/huangsam/sonar/internal/contract"
	"github.com/huangsam/sonar/internal/outwriter"
	"github.com/huangsam/sonar/schema"
	"github.com/spf13/cobra"
)

// windowCmd prints the per-part window table.
var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show how many windows were compared for each part.",
	Long: `Print one table row per part: the window size, how many windows fit
in the readings, and how many of them increased.

This is the same sweep as the root command, always rendered as a table.
Other output formats are ignored on stdout and rejected with --output-file.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		tableCfg, err := windowConfig(cfg)
		if err != nil {
			contract.LogFatal("Cannot run window sweep", err)
		}
		if err := core.ExecuteSweep(rootCtx, tableCfg, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot run window sweep", err)
		}
	},
}

// windowConfig returns a copy of cfg that renders a table.
// A non-table format aimed at a file is an error, so that a table never lands
// in a file named for JSON, CSV or Parquet.
func windowConfig(cfg *contract.Config) (*contract.Config, error) {
	if cfg.Output != schema.TextOut && cfg.Output != schema.TableOut {
		if cfg.OutputFile != "" {
			return nil, fmt.Errorf("window only prints a table, cannot write %s output to %s", cfg.Output, cfg.OutputFile)
		}
		contract.LogWarn("Ignoring output format", fmt.Errorf("window always prints a table, not %s", cfg.Output))
	}
	tableCfg := cfg.Clone()
	tableCfg.Output = schema.TableOut
	return tableCfg, nil
}
