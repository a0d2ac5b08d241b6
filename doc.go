// Package goscierror provides measurement uncertainty propagation and
// weighted linear regression for laboratory data.
//
// # Features
//
//   - Measurements carrying a value and a standard uncertainty
//   - First-order error propagation through +, -, *, / and elementary functions
//   - Weighted least-squares straight-line fits with parameter uncertainties
//   - Chi-squared and Durbin-Watson fit diagnostics
//   - Column extraction from delimited text files
//   - LaTeX table output
//
// # Quick Start
//
// Combine measurements:
//
//	l := measurement.New(20, 0.5)
//	w := measurement.New(15, 0.1)
//	fmt.Println(l.Div(w)) // 1.3333 +- 0.0345
//	fmt.Println(measurement.Arcsin(measurement.New(0.5, 0.1))) // 0.5236 +- 0.1155
//
// Fit a line to data with y uncertainties:
//
//	f, _ := datafile.Load("data.csv", nil)
//	cols, _ := f.ReadCols(1, 0, f.NumRows(), 3)
//	m, c, err := regression.New(cols[0], cols[1], cols[2]).Regress()
//
// # Packages
//
//   - measurement: Value type and uncertainty propagation
//   - regression: Weighted linear least squares
//   - datafile: Delimited text ingestion
//   - table: LaTeX table rendering
//
// # References
//
//   - Taylor, J.R. (1997). An Introduction to Error Analysis
//   - Hughes, I.G., & Hase, T.P.A. (2010). Measurements and their Uncertainties
package goscierror
