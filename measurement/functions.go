package measurement

import "math"

// Sin returns sin(m).
func Sin(m Measurement) Measurement {
	return Measurement{
		value: math.Sin(m.value),
		err:   math.Abs(math.Cos(m.value)) * m.err,
	}
}

// Cos returns cos(m).
func Cos(m Measurement) Measurement {
	return Measurement{
		value: math.Cos(m.value),
		err:   math.Abs(math.Sin(m.value)) * m.err,
	}
}

// Tan returns tan(m).
func Tan(m Measurement) Measurement {
	c := math.Cos(m.value)
	return Measurement{
		value: math.Tan(m.value),
		err:   m.err / (c * c),
	}
}

// Pow returns m raised to an exact power p.
func Pow(m Measurement, p float64) Measurement {
	v := math.Pow(m.value, p)
	return Measurement{
		value: v,
		err:   math.Abs(v * p * m.err / m.value),
	}
}

// Log returns the natural logarithm of m.
func Log(m Measurement) Measurement {
	return Measurement{
		value: math.Log(m.value),
		err:   math.Abs(m.err / m.value),
	}
}

// LogBase returns the base-b logarithm of m.
func LogBase(m Measurement, b float64) Measurement {
	lnb := math.Log(b)
	return Measurement{
		value: math.Log(m.value) / lnb,
		err:   math.Abs(m.err / (lnb * m.value)),
	}
}

// Exp returns e^m.
func Exp(m Measurement) Measurement {
	v := math.Exp(m.value)
	return Measurement{
		value: v,
		err:   v * m.err,
	}
}

// Arcsin returns asin(m). The error is infinite at |m| == 1 and NaN
// beyond it.
func Arcsin(m Measurement) Measurement {
	return Measurement{
		value: math.Asin(m.value),
		err:   m.err / math.Sqrt(1-m.value*m.value),
	}
}

// Arccos returns acos(m). The error is infinite at |m| == 1 and NaN
// beyond it.
func Arccos(m Measurement) Measurement {
	return Measurement{
		value: math.Acos(m.value),
		err:   m.err / math.Sqrt(1-m.value*m.value),
	}
}

// Arctan returns atan(m).
func Arctan(m Measurement) Measurement {
	return Measurement{
		value: math.Atan(m.value),
		err:   m.err / (m.value*m.value + 1),
	}
}
