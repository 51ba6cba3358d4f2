package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// A Summary describes a table: its columns and its first few rows.
type Summary struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Samples [][]string `json:"samples" yaml:"samples"`

	// Number of data rows, excluding the header.
	Rows int `json:"rows" yaml:"rows"`
}

// Inspect reads a whole CSV table, keeping up to samples rows.
func Inspect(r io.Reader, samples int) (*Summary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	columns, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty table")
	} else if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	summary := &Summary{Columns: columns}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return summary, nil
		} else if err != nil {
			return nil, fmt.Errorf("error reading row %d: %w", summary.Rows+1, err)
		}
		summary.Rows++
		if len(summary.Samples) < samples {
			summary.Samples = append(summary.Samples, row)
		}
	}
}

// InspectFile is Inspect on a file.
func InspectFile(filename string, samples int) (*Summary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening '%s': %w", filename, err)
	}
	defer f.Close()
	summary, err := Inspect(f, samples)
	if err != nil {
		return nil, fmt.Errorf("error inspecting '%s': %w", filename, err)
	}
	return summary, nil
}
