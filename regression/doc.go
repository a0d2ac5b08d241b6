// Package regression fits a straight line y = m*x + c to data whose y values
// carry an uncertainty, and reports the slope and intercept as measurements.
//
// # Fitting
//
// Each point is weighted by 1/yerr^2, so noisier points pull the line less:
//
//	x := []float64{1, 2, 3, 4, 5, 6}
//	y := []float64{2.9, 5.2, 6.8, 9.1, 11.2, 12.8}
//	yerr := []float64{0.1, 0.2, 0.1, 0.3, 0.2, 0.1}
//
//	m, c, err := regression.New(x, y, yerr).Regress()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m, c) // 1.9861 +- 0.0347 0.9392 +- 0.1353
//
// Passing a nil yerr weights every point equally, which gives the ordinary
// least-squares line.
//
// # Diagnostics
//
// Fit returns the full Result, including residuals and chi-squared:
//
//	res, err := regression.New(x, y, yerr).Fit()
//	fmt.Printf("chi2/dof = %.3f\n", res.ReducedChiSquared)
//	fitted := res.Line(x)
//
//	// Chi-squared test against the stated uncertainties
//	gof := res.GoodnessOfFit()
//	fmt.Printf("p = %.3f\n", gof.PValue)
//
//	// Serial correlation of residuals; near 2 for a straight-line trend
//	dw := res.DurbinWatson()
//
// # Errors
//
// Inputs are checked before any arithmetic. Slices of different lengths give
// ErrDimensionMismatch, fewer than three points give ErrInsufficientData,
// identical x values give ErrDegenerateX and non-positive uncertainties give
// ErrNonPositiveError.
package regression
