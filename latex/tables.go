package latex

import (
	"fmt"
	"strings"
)

// Table renders a centered tabular with a full grid. Every row must have
// exactly as many cells as there are headers; NewTable rejects ragged input.
type Table struct {
	container
	Headers  []string
	Rows     [][]string
	Caption  string
	Label    string
	Position string
}

func NewTable(headers []string, rows [][]string, caption, label string) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("table row %d has %d cells, want %d", i, len(row), len(headers))
		}
	}
	return &Table{Headers: headers, Rows: rows, Caption: caption, Label: label, Position: "h"}, nil
}

func (t *Table) LaTeX() string {
	cols := make([]string, len(t.Headers))
	for i := range cols {
		cols[i] = "c"
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "\\begin{table}[%s]\n", t.Position)
	buf.WriteString("    \\centering\n")
	fmt.Fprintf(&buf, "    \\begin{tabular}{|%s|}\n", strings.Join(cols, "|"))
	buf.WriteString("        \\hline\n")
	fmt.Fprintf(&buf, "        %s \\\\\n", strings.Join(t.Headers, " & "))
	buf.WriteString("        \\hline\n")
	for _, row := range t.Rows {
		fmt.Fprintf(&buf, "        %s \\\\\n", strings.Join(row, " & "))
	}
	buf.WriteString("        \\hline\n")
	buf.WriteString("    \\end{tabular}\n")
	if t.Caption != "" {
		fmt.Fprintf(&buf, "    \\caption{%s}\n", t.Caption)
	}
	if t.Label != "" {
		fmt.Fprintf(&buf, "    \\label{%s}\n", t.Label)
	}
	buf.WriteString("\\end{table}\n")
	return buf.String()
}
