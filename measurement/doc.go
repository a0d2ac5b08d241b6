// Package measurement provides a value type carrying a standard uncertainty
// and the first-order propagation of that uncertainty through arithmetic and
// elementary functions.
//
// # Creating Measurements
//
// A Measurement pairs a value with its absolute error:
//
//	length := measurement.New(20, 0.5)
//	width := measurement.New(15, 0.1)
//
// # Arithmetic
//
// Binary operations return a new Measurement; operands are never modified:
//
//	sum := length.Add(width)       // 35 +- 0.5099
//	diff := length.Sub(width)      // 5 +- 0.5099
//	area := length.Mul(width)      // 300 +- 7.7621
//	ratio := length.Div(width)     // 1.3333 +- 0.0345
//
// Errors of sums and differences combine in quadrature. Products and
// quotients combine relative errors in quadrature.
//
// # Elementary Functions
//
// Functions of a single measurement propagate |df/dx| * error:
//
//	angle := measurement.New(0.5, 0.1)
//	s := measurement.Sin(angle)
//	a := measurement.Arcsin(angle)  // 0.5236 +- 0.1155
//	p := measurement.Pow(length, 4)
//	l := measurement.LogBase(length, 10)
//
// # Domain Faults
//
// Inputs outside a function's domain are not rejected. Division by a zero
// value, or an inverse sine of a value outside (-1, 1), yields the IEEE-754
// result (±Inf or NaN) that the math package produces. Use Valid to screen
// results:
//
//	if r := length.Div(zero); !r.Valid() {
//	    // handle the fault
//	}
package measurement
