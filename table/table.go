// Package table renders row data as LaTeX tables.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sartorproj/goscierror/measurement"
)

// ErrNoRows is returned when there is nothing to render.
var ErrNoRows = errors.New("table has no rows")

// tab is the indent unit of the generated LaTeX.
const tab = "    "

// LaTeX writes a table environment containing rows, with an empty heading
// row, caption and label for the author to fill in. The column count is
// taken from the first row plus one leading column. If here is set the
// table gets the [h] placement specifier.
func LaTeX(w io.Writer, rows [][]string, here bool) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	cols := len(rows[0]) + 1
	placement := ""
	if here {
		placement = "[h]"
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\\begin{table}%s\n", placement)
	bw.WriteString(tab + "\\centering\n")
	fmt.Fprintf(bw, "%s\\begin{tabular}{%s}\n", tab, strings.Repeat("c", cols))
	bw.WriteString(tab + tab + "\\hline\n")
	fmt.Fprintf(bw, "%s%s \\\\\n", tab+tab, strings.Repeat(" &", cols-1))
	bw.WriteString(tab + tab + "\\hline\n")

	for _, row := range rows {
		bw.WriteString(tab + tab)
		for _, cell := range row {
			bw.WriteString(" & " + cell)
		}
		bw.WriteString(" \\\\\n")
	}

	bw.WriteString(tab + tab + "\\hline\n")
	bw.WriteString(tab + "\\end{tabular}\n")
	bw.WriteString(tab + "\\caption{}\n")
	bw.WriteString(tab + "\\label{tab:}\n")
	bw.WriteString("\\end{table}\n")

	return bw.Flush()
}

// Row formats each value with its String method.
func Row(values ...fmt.Stringer) []string {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = v.String()
	}
	return row
}

// MeasurementRows lays out measurements as rows, one measurement per cell.
// All columns must have the same length.
func MeasurementRows(columns ...[]measurement.Measurement) ([][]string, error) {
	if len(columns) == 0 {
		return nil, ErrNoRows
	}
	n := len(columns[0])
	for i, c := range columns {
		if len(c) != n {
			return nil, fmt.Errorf("column %d has %d values, want %d", i, len(c), n)
		}
	}

	rows := make([][]string, n)
	for r := range rows {
		cells := make([]fmt.Stringer, len(columns))
		for c, col := range columns {
			cells[c] = col[r]
		}
		rows[r] = Row(cells...)
	}
	return rows, nil
}
