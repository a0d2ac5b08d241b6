// Package datafile reads delimited text files into numeric columns.
package datafile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrInvalidRange is returned when an end coordinate precedes its start.
	ErrInvalidRange = errors.New("end row/col coordinate before start coordinate")
	// ErrOutOfBounds is returned when a requested cell lies outside the data.
	ErrOutOfBounds = errors.New("cell outside data")
)

// Options holds options for reading a data file.
type Options struct {
	Delimiter rune // Field delimiter (default: ',')
	Comment   rune // Lines starting with this rune are ignored (0 disables)
	SkipRows  int  // Number of rows to skip at start
}

// DefaultOptions returns default options for reading comma-separated data.
func DefaultOptions() *Options {
	return &Options{
		Delimiter: ',',
	}
}

// File holds the raw cells of a delimited text file, row by row.
type File struct {
	rows [][]string
}

// Load reads a delimited text file.
func Load(filename string, opts *Options) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFromReader(file, opts)
}

// LoadFromReader reads delimited text from an io.Reader.
func LoadFromReader(r io.Reader, opts *Options) (*File, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.Comment = opts.Comment
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("skipping row %d: %w", i, err)
		}
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i, cell := range record {
			record[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, record)
	}

	return &File{rows: rows}, nil
}

// NumRows returns the number of rows read.
func (f *File) NumRows() int {
	return len(f.rows)
}

// Row returns the cells of row i.
func (f *File) Row(i int) []string {
	return f.rows[i]
}

// ReadCols returns each column of the sub-rectangle [startRow, endRow) x
// [startCol, endCol) converted to float64. Coordinates start at (0, 0).
func (f *File) ReadCols(startRow, startCol, endRow, endCol int) ([][]float64, error) {
	if startRow > endRow || startCol > endCol {
		return nil, ErrInvalidRange
	}
	if startRow < 0 || startCol < 0 || endRow > len(f.rows) {
		return nil, fmt.Errorf("%w: rows [%d, %d) of %d", ErrOutOfBounds, startRow, endRow, len(f.rows))
	}

	cols := make([][]float64, 0, endCol-startCol)
	for col := startCol; col < endCol; col++ {
		values := make([]float64, 0, endRow-startRow)
		for row := startRow; row < endRow; row++ {
			if col >= len(f.rows[row]) {
				return nil, fmt.Errorf("%w: row %d has %d columns, want column %d",
					ErrOutOfBounds, row, len(f.rows[row]), col)
			}
			v, err := strconv.ParseFloat(f.rows[row][col], 64)
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", row, col, err)
			}
			values = append(values, v)
		}
		cols = append(cols, values)
	}

	return cols, nil
}

// SaveCols writes equal-length columns to a file, one row per line, with an
// optional header.
func SaveCols(filename string, header []string, cols ...[]float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCols(file, header, cols...); err != nil {
		return err
	}
	return file.Close()
}

// WriteCols writes equal-length columns as comma-separated rows.
func WriteCols(w io.Writer, header []string, cols ...[]float64) error {
	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	for i, c := range cols {
		if len(c) != n {
			return fmt.Errorf("column %d has %d values, want %d", i, len(c), n)
		}
	}

	writer := bufio.NewWriter(w)

	if len(header) > 0 {
		writer.WriteString(strings.Join(header, ","))
		writer.WriteString("\n")
	}

	for row := 0; row < n; row++ {
		for i, c := range cols {
			if i > 0 {
				writer.WriteString(",")
			}
			writer.WriteString(strconv.FormatFloat(c[row], 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return writer.Flush()
}
