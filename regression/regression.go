// Package regression implements weighted linear least-squares fits of data
// with uncertainty in the dependent variable.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goscierror/measurement"
)

var (
	// ErrDimensionMismatch is returned when x, y and yerr differ in length.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInsufficientData is returned for fits of two or fewer points, which
	// leave no degrees of freedom for the parameter errors.
	ErrInsufficientData = errors.New("at least 3 data points are required")
	// ErrDegenerateX is returned when every x value is identical.
	ErrDegenerateX = errors.New("x values are all identical")
	// ErrNonPositiveError is returned when a y uncertainty is not a finite
	// positive number, or when the weights 1/yerr^2 overflow or vanish.
	ErrNonPositiveError = errors.New("y uncertainties must be finite and positive")
)

// Regression fits y = m*x + c to a dataset.
type Regression struct {
	x      []float64
	y      []float64
	yerr   []float64
	result *Result
}

// Result holds a fitted line and its diagnostics.
type Result struct {
	Slope     measurement.Measurement
	Intercept measurement.Measurement
	N         int

	XMean float64 // Weighted mean of x
	YMean float64 // Weighted mean of y
	D     float64 // Weighted sum of squared x deviations

	Residuals         []float64 // y - (m*x + c) per point
	ChiSquared        float64   // Weighted residual sum of squares
	ReducedChiSquared float64   // ChiSquared / (N - 2)
}

// New creates a regression over x, y and optional y uncertainties.
// When yerr is nil every point gets the uniform uncertainty 1/n.
// The slices are not copied and must not be modified while fitting.
func New(x, y, yerr []float64) *Regression {
	return &Regression{x: x, y: y, yerr: yerr}
}

// Regress fits the data and returns the slope and intercept.
func (r *Regression) Regress() (slope, intercept measurement.Measurement, err error) {
	res, err := r.Fit()
	if err != nil {
		return measurement.Measurement{}, measurement.Measurement{}, err
	}
	return res.Slope, res.Intercept, nil
}

// Result returns the most recent successful fit, or nil.
func (r *Regression) Result() *Result {
	return r.result
}

// Fit performs the weighted least-squares fit with weights 1/yerr^2.
// Inputs are validated before any arithmetic is done.
func (r *Regression) Fit() (*Result, error) {
	n := len(r.x)
	if len(r.y) != n {
		return nil, fmt.Errorf("%w: x has %d points, y has %d", ErrDimensionMismatch, n, len(r.y))
	}
	if r.yerr != nil && len(r.yerr) != n {
		return nil, fmt.Errorf("%w: x has %d points, yerr has %d", ErrDimensionMismatch, n, len(r.yerr))
	}
	if n <= 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, n)
	}
	if floats.Min(r.x) == floats.Max(r.x) {
		return nil, ErrDegenerateX
	}

	w, err := weights(r.yerr, n)
	if err != nil {
		return nil, err
	}

	sumW := floats.Sum(w)
	xbar := stat.Mean(r.x, w)
	ybar := stat.Mean(r.y, w)

	dx := make([]float64, n)
	copy(dx, r.x)
	floats.AddConst(-xbar, dx)

	wdx := floats.MulTo(make([]float64, n), w, dx)
	d := floats.Dot(wdx, dx)

	m := floats.Dot(wdx, r.y) / d
	c := ybar - m*xbar

	residuals := make([]float64, n)
	for i := range residuals {
		residuals[i] = r.y[i] - m*r.x[i] - c
	}
	wr := floats.MulTo(make([]float64, n), w, residuals)
	chi2 := floats.Dot(wr, residuals)
	reduced := chi2 / float64(n-2)

	res := &Result{
		Slope:             measurement.New(m, math.Sqrt(reduced/d)),
		Intercept:         measurement.New(c, math.Sqrt((1/sumW+xbar*xbar/d)*reduced)),
		N:                 n,
		XMean:             xbar,
		YMean:             ybar,
		D:                 d,
		Residuals:         residuals,
		ChiSquared:        chi2,
		ReducedChiSquared: reduced,
	}
	r.result = res
	return res, nil
}

// Predict evaluates the fitted line at x.
func (res *Result) Predict(x float64) float64 {
	return res.Slope.Value()*x + res.Intercept.Value()
}

// Line evaluates the fitted line at each of xs.
func (res *Result) Line(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = res.Predict(x)
	}
	return out
}

// weights converts uncertainties to 1/yerr^2. A nil yerr is treated as a
// uniform uncertainty of 1/n.
func weights(yerr []float64, n int) ([]float64, error) {
	w := make([]float64, n)
	if yerr == nil {
		u := float64(n) * float64(n)
		for i := range w {
			w[i] = u
		}
		return w, nil
	}
	for i, e := range yerr {
		if !(e > 0) || math.IsInf(e, 1) {
			return nil, fmt.Errorf("%w: yerr[%d] = %g", ErrNonPositiveError, i, e)
		}
		w[i] = 1 / (e * e)
		if math.IsInf(w[i], 1) {
			return nil, fmt.Errorf("%w: yerr[%d] = %g gives an infinite weight", ErrNonPositiveError, i, e)
		}
	}
	if sum := floats.Sum(w); sum == 0 || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: weights sum to %g", ErrNonPositiveError, sum)
	}
	return w, nil
}
