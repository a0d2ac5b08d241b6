// Package datafile loads delimited text data and extracts numeric columns
// from a rectangular subsection of it.
//
// # Reading Columns
//
//	f, err := datafile.Load("pendulum.csv", nil)
//	if err != nil {
//	    return err
//	}
//
//	// Rows 1..10 (skipping the header), columns 0..2, end exclusive.
//	cols, err := f.ReadCols(1, 0, 11, 3)
//	x, y, yerr := cols[0], cols[1], cols[2]
//
// # Options
//
//	opts := &datafile.Options{
//	    Delimiter: ';',
//	    Comment:   '#',
//	    SkipRows:  2,
//	}
//	f, err := datafile.LoadFromReader(reader, opts)
//
// # Writing Columns
//
//	err := datafile.SaveCols("fit.csv", []string{"x", "fit"}, x, fitted)
package datafile
