package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/akam1o/args/pkg/collection"
	"github.com/akam1o/args/pkg/schema"
)

// Output formats
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// FormatTable formats data as a table with aligned columns
func FormatTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// Print headers
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	// Print separator
	sep := make([]string, len(headers))
	for i := range headers {
		sep[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// FormatValues writes parsed flag values in the requested format
func FormatValues(w io.Writer, format string, values []collection.Value) error {
	switch format {
	case formatJSON:
		return writeJSON(w, values)
	case formatYAML:
		return writeYAML(w, values)
	}

	rows := make([][]string, 0, len(values))
	for _, v := range values {
		value := v.Value
		if !v.Set && v.Type != schema.Bool.String() {
			value = "-"
		}
		rows = append(rows, []string{v.Name, v.Type, strconv.FormatBool(v.Set), value})
	}
	return FormatTable(w, []string{"NAME", "TYPE", "SET", "VALUE"}, rows)
}

// FormatSchema writes schema declarations in the requested format
func FormatSchema(w io.Writer, format string, entries []schema.Entry) error {
	switch format {
	case formatJSON:
		return writeJSON(w, entries)
	case formatYAML:
		return writeYAML(w, map[string][]schema.Entry{"flags": entries})
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{"-" + e.Name, e.Type})
	}
	return FormatTable(w, []string{"FLAG", "TYPE"}, rows)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
