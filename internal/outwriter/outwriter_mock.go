package outwriter

import (
	"github.com/huangsam/sonar/internal/contract"
	"github.com/huangsam/sonar/schema"
	"github.com/stretchr/testify/mock"
)

// MockReportWriter is a mock implementation of ReportWriter for testing.
type MockReportWriter struct {
	mock.Mock
}

var _ contract.ReportWriter = &MockReportWriter{} // Compile-time check

// WriteReport implements the ReportWriter interface.
func (m *MockReportWriter) WriteReport(report schema.Report, cfg *contract.Config) error {
	args := m.Called(report, cfg)
	return args.Error(0)
}
