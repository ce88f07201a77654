package core

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/sonar/schema"
)

// LoadReadings reads the whole file at path and parses one integer per line.
// Open and read failures are returned as *schema.ReadError, bad lines as *schema.ParseError.
func LoadReadings(path string) ([]int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &schema.ReadError{Path: path, Err: err}
	}
	return parseContent(string(content))
}

// readerSource names an io.Reader in a *schema.ReadError.
const readerSource = "<reader>"

// ParseReadings is LoadReadings for an already opened source.
func ParseReadings(r io.Reader) ([]int, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &schema.ReadError{Path: readerSource, Err: err}
	}
	return parseContent(string(content))
}

// parseContent converts newline separated content into readings, in order.
// A single trailing newline ends the last line rather than starting an empty one.
func parseContent(content string) ([]int, error) {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}

	var readings []int
	lineNo := 0
	for line := range strings.SplitSeq(content, "\n") {
		lineNo++
		line = strings.TrimSuffix(line, "\r")
		value, err := strconv.Atoi(line)
		if err != nil {
			return nil, &schema.ParseError{Line: lineNo, Text: line, Err: err}
		}
		readings = append(readings, value)
	}
	return readings, nil
}
