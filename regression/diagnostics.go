package regression

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// GoodnessOfFit represents a chi-squared test of the fit against the stated
// uncertainties. The null hypothesis is that the residuals are explained by
// the y errors alone.
type GoodnessOfFit struct {
	ChiSquared float64
	DOF        int
	PValue     float64 // P(chi2 >= ChiSquared) for DOF degrees of freedom
}

// GoodnessOfFit tests the weighted residuals against a chi-squared
// distribution with N-2 degrees of freedom. A very small p-value means the
// scatter is larger than the uncertainties allow; a p-value close to 1
// suggests the uncertainties are overestimated.
// The test is only meaningful when the fit used real y uncertainties.
func (res *Result) GoodnessOfFit() *GoodnessOfFit {
	dof := res.N - 2
	if dof < 1 {
		return nil
	}

	dist := distuv.ChiSquared{K: float64(dof)}
	return &GoodnessOfFit{
		ChiSquared: res.ChiSquared,
		DOF:        dof,
		PValue:     dist.Survival(res.ChiSquared),
	}
}

// DurbinWatson computes the Durbin-Watson statistic of the residuals in
// data order. Values near 2 indicate uncorrelated residuals; values well
// below 2 suggest the data curve away from a straight line.
// Returns NaN when the residuals are all zero.
func (res *Result) DurbinWatson() float64 {
	r := res.Residuals
	if len(r) < 2 {
		return math.NaN()
	}

	numerator := 0.0
	for i := 1; i < len(r); i++ {
		diff := r[i] - r[i-1]
		numerator += diff * diff
	}

	denominator := 0.0
	for _, v := range r {
		denominator += v * v
	}

	if denominator == 0 {
		return math.NaN()
	}
	return numerator / denominator
}
