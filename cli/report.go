package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/amonks/genremap/subcmd"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

func formatFlag(sc *subcmd.Subcommand) *string {
	return sc.String("format", "table", "output format: 'table', 'json' or 'yaml'")
}

// A report is printed as a table, or v is encoded whole.
type report struct {
	v      any
	header []string
	rows   [][]string
}

func (r report) write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.v)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.v); err != nil {
			return err
		}
		return enc.Close()

	case "table":
		table := tablewriter.NewWriter(w)
		table.Header(r.header)
		for _, row := range r.rows {
			if err := table.Append(row); err != nil {
				return err
			}
		}
		return table.Render()

	default:
		return fmt.Errorf("unknown format '%s'", format)
	}
}
