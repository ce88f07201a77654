package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/sonar/internal/contract"
	"github.com/huangsam/sonar/internal/parquet"
	"github.com/huangsam/sonar/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintReport outputs the report, dispatching based on the output format configured.
// Output goes to cfg.OutputFile, or stdout when it is empty.
func PrintReport(report schema.Report, cfg *contract.Config) error {
	if cfg.Output == schema.ParquetOut {
		if err := printParquetReport(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		return nil
	}

	return writeReportOutput(cfg.OutputFile, string(cfg.Output), func(w io.Writer) error {
		return WriteReportResults(w, report, cfg)
	})
}

// WriteReportResults writes the report to w in any stream format.
// Parquet is file-only and goes through PrintReport instead.
func WriteReportResults(w io.Writer, report schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, report); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVReport(w, report); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.TableOut:
		if err := writeReportTable(w, report); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("%s output can only be written to a file", schema.ParquetOut)
	default:
		if err := writeTextReport(w, report, cfg.UseColors); err != nil {
			return fmt.Errorf("error writing text output: %w", err)
		}
	}
	return nil
}

// writeTextReport prints the day label followed by one count per line.
func writeTextReport(w io.Writer, report schema.Report, useColors bool) error {
	label := schema.DayLabel
	if useColors {
		label = contract.HeaderColor.Sprint(label)
	}
	_, err := fmt.Fprintf(w, "%s\n%d\n%d\n", label, report.Increases, report.WindowIncreases)
	return err
}

// writeReportTable prints one row per part in a four-column table.
func writeReportTable(w io.Writer, report schema.Report) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Part", "Window", "Compared", "Increases"}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range schema.WindowRows(report) {
		data = append(data, windowRowFields(row))
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Swept %d readings from %s\n", report.Readings, report.Source)
	return err
}

// writeCSVReport writes one record per part.
func writeCSVReport(w io.Writer, report schema.Report) error {
	header := []string{"part", "window", "compared", "increases"}
	var records [][]string
	for _, row := range schema.WindowRows(report) {
		records = append(records, windowRowFields(row))
	}
	return writeCSVWithHeader(w, header, records)
}

// windowRowFields formats a row for table and CSV output.
func windowRowFields(row schema.WindowRow) []string {
	return []string{
		strconv.Itoa(row.Part),
		strconv.Itoa(row.Window),
		strconv.Itoa(row.Compared),
		strconv.Itoa(row.Increases),
	}
}

// printParquetReport writes the report to cfg.OutputFile as Parquet.
func printParquetReport(report schema.Report, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("output-file is required for %s output", schema.ParquetOut)
	}
	if err := parquet.WriteWindowRecordsParquet(parquet.RecordsFromReport(report), cfg.OutputFile); err != nil {
		return err
	}
	noteSaved(string(schema.ParquetOut), cfg.OutputFile)
	return nil
}
