// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/sonar/schema"

// ReportWriter renders a finished sweep report.
// This allows the sweep orchestration to be tested without touching stdout.
type ReportWriter interface {
	WriteReport(report schema.Report, cfg *Config) error
}
