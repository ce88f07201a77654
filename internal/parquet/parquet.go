// Package parquet provides data structures and functions for exporting sonar
// sweep reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/sonar/schema"
	"github.com/parquet-go/parquet-go"
)

// WindowRecord is one part of a sweep report.
type WindowRecord struct {
	// Part is 1 for adjacent pairs and 2 for three-element window sums
	Part int32 `parquet:"part,snappy"`

	// Window is the number of readings each comparison spans
	Window int32 `parquet:"window,snappy"`

	// Compared is the number of windows examined
	Compared int64 `parquet:"compared,snappy"`

	// Increases is the number of windows that increased
	Increases int64 `parquet:"increases,snappy"`

	// Source is the readings file the report was built from
	Source string `parquet:"source,snappy"`
}

// RecordsFromReport converts a report into one record per part.
func RecordsFromReport(report schema.Report) []WindowRecord {
	rows := schema.WindowRows(report)
	records := make([]WindowRecord, len(rows))
	for i, row := range rows {
		records[i] = WindowRecord{
			Part:      int32(row.Part),
			Window:    int32(row.Window),
			Compared:  int64(row.Compared),
			Increases: int64(row.Increases),
			Source:    report.Source,
		}
	}
	return records
}

// WriteWindowRecordsParquet writes a slice of WindowRecord structs to a Parquet file.
func WriteWindowRecordsParquet(data []WindowRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the WindowRecord struct tags
	writer := parquet.NewGenericWriter[WindowRecord](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
