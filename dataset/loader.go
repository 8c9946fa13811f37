package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the dataset file at path and parses it.
// I/O failures are returned wrapped; format failures come from Parse.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}

	return m, nil
}

// Parse reads a whitespace-delimited categorical dataset from r.
//
// Each non-blank line becomes one row; fields are split on runs of spaces or
// tabs. All rows must have the same field count as the first row.
//
// Returns ErrEmptyDataset when no rows are found and ErrRaggedRows (with the
// offending 1-based line number) on inconsistent widths.
// Complexity: O(bytes of input).
func Parse(r io.Reader) (*Matrix, error) {
	var labels [][]string
	cols := 0

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%w: line %d has %d values, want %d",
				ErrRaggedRows, line, len(fields), cols)
		}
		labels = append(labels, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if len(labels) == 0 {
		return nil, ErrEmptyDataset
	}

	return &Matrix{labels: labels, cols: cols}, nil
}
