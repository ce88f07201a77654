// Package core has the sweep logic for sonar.
package core

import (
	"context"
	"fmt"

	"github.com/huangsam/sonar/internal/contract"
)

// ExecuteSweep loads the configured readings, counts increases and writes the report.
// Nothing is written when loading fails.
func ExecuteSweep(ctx context.Context, cfg *contract.Config, ow contract.ReportWriter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	readings, err := LoadReadings(cfg.InputPath)
	if err != nil {
		return err
	}

	report := BuildReport(cfg.InputPath, readings)
	if err := ow.WriteReport(report, cfg); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
