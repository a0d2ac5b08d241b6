package measurement

import (
	"math"
	"strconv"
)

// Measurement is a value with an absolute standard uncertainty.
// The zero value is 0 +- 0.
type Measurement struct {
	value float64
	err   float64
}

// New creates a measurement from a value and its absolute error.
func New(value, err float64) Measurement {
	return Measurement{value: value, err: err}
}

// Value returns the measured value.
func (m Measurement) Value() float64 {
	return m.value
}

// Error returns the absolute error of the measurement.
func (m Measurement) Error() float64 {
	return m.err
}

// Relative returns the relative error, error/value.
func (m Measurement) Relative() float64 {
	return m.err / m.value
}

// Valid reports whether the value and error are finite and the error is
// non-negative.
func (m Measurement) Valid() bool {
	return isFinite(m.value) && isFinite(m.err) && m.err >= 0
}

// Equal reports whether both value and error agree with other within tol.
func (m Measurement) Equal(other Measurement, tol float64) bool {
	return math.Abs(m.value-other.value) <= tol && math.Abs(m.err-other.err) <= tol
}

// String formats the measurement as "value +- error", each rounded to four
// decimal places.
func (m Measurement) String() string {
	return formatRounded(m.value) + " +- " + formatRounded(m.err)
}

// AddError combines two independent errors in quadrature.
func AddError(e1, e2 float64) float64 {
	return math.Sqrt(e1*e1 + e2*e2)
}

// Add returns m + other.
func (m Measurement) Add(other Measurement) Measurement {
	return Measurement{
		value: m.value + other.value,
		err:   AddError(m.err, other.err),
	}
}

// Sub returns m - other. Errors never cancel, so m.Sub(m) has error
// sqrt(2)*m.Error().
func (m Measurement) Sub(other Measurement) Measurement {
	return Measurement{
		value: m.value - other.value,
		err:   AddError(m.err, other.err),
	}
}

// Mul returns m * other, combining relative errors in quadrature.
func (m Measurement) Mul(other Measurement) Measurement {
	v := m.value * other.value
	return Measurement{
		value: v,
		err:   math.Abs(v) * AddError(m.err/m.value, other.err/other.value),
	}
}

// Div returns m / other, combining relative errors in quadrature.
func (m Measurement) Div(other Measurement) Measurement {
	v := m.value / other.value
	return Measurement{
		value: v,
		err:   math.Abs(v) * AddError(m.err/m.value, other.err/other.value),
	}
}

// Scale multiplies the measurement by an exact constant.
func (m Measurement) Scale(k float64) Measurement {
	return Measurement{value: m.value * k, err: m.err * math.Abs(k)}
}

// Neg returns -m.
func (m Measurement) Neg() Measurement {
	return Measurement{value: -m.value, err: m.err}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// roundLimit is the magnitude above which a float64 has no digits left
// at four decimal places.
const roundLimit = 1 << 52 / 1e4

// expLimit is where formatting switches to exponent notation.
const expLimit = 1e16

func formatRounded(f float64) string {
	if !isFinite(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if math.Abs(f) < roundLimit {
		f = math.Round(f*1e4) / 1e4
		// avoid "-0"
		if f == 0 {
			f = 0
		}
	}
	if math.Abs(f) >= expLimit {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
