package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/sonar/internal/contract"
)

// savedNotices receives the "saved" line printed after a report lands in a file.
var savedNotices io.Writer = os.Stderr

// writeReportOutput renders a report into outputFile, or stdout when it is empty.
// The file is closed before the saved notice is printed, so a failed flush is reported.
func writeReportOutput(outputFile, format string, render func(io.Writer) error) error {
	dest, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if dest == os.Stdout {
		return render(dest)
	}

	if err := render(dest); err != nil {
		_ = dest.Close()
		return err
	}
	if err := dest.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outputFile, err)
	}
	noteSaved(format, outputFile)
	return nil
}

// noteSaved tells the user where the counts went.
func noteSaved(format, outputFile string) {
	fmt.Fprintf(savedNotices, "💾 Saved %s counts to %s\n", format, outputFile)
}

// writeJSON writes data as two-space indented JSON followed by a newline.
func writeJSON(w io.Writer, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = w.Write(append(encoded, '\n'))
	return err
}

// writeCSVWithHeader writes header and then rows, one CSV record each.
func writeCSVWithHeader(w io.Writer, header []string, rows [][]string) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := csvWriter.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}
	return nil
}
