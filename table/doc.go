// Package table renders computed values as a LaTeX table for lab reports.
//
// The generated table has an empty heading row, caption and label to be
// completed by hand:
//
//	rows, err := table.MeasurementRows(lengths, periods)
//	if err != nil {
//	    return err
//	}
//	table.LaTeX(os.Stdout, rows, true)
package table
