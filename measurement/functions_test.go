package measurement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementaryFunctions(t *testing.T) {
	m := New(5, 0.5)

	tests := []struct {
		name      string
		got       Measurement
		wantValue float64
		wantError float64
	}{
		{"sin", Sin(m), math.Sin(5), math.Abs(math.Cos(5)) * 0.5},
		{"cos", Cos(m), math.Cos(5), math.Abs(math.Sin(5)) * 0.5},
		{"tan", Tan(m), math.Tan(5), 0.5 / math.Pow(math.Cos(5), 2)},
		{"pow", Pow(m, 4), 625, 250},
		{"log", Log(m), math.Log(5), 0.1},
		{"log10", LogBase(m, 10), math.Log10(5), 0.5 / (math.Ln10 * 5)},
		{"exp", Exp(m), math.Exp(5), math.Exp(5) * 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantValue, tt.got.Value(), 1e-9)
			assert.InDelta(t, tt.wantError, tt.got.Error(), 1e-9)
		})
	}
}

func TestInverseTrig(t *testing.T) {
	m := New(0.5, 0.1)

	asin := Arcsin(m)
	assert.InDelta(t, math.Pi/6, asin.Value(), 1e-9)
	assert.InDelta(t, 0.1155, asin.Error(), 1e-4)

	acos := Arccos(m)
	assert.InDelta(t, math.Pi/3, acos.Value(), 1e-9)
	assert.InDelta(t, asin.Error(), acos.Error(), 1e-12)

	atan := Arctan(m)
	assert.InDelta(t, math.Atan(0.5), atan.Value(), 1e-9)
	assert.InDelta(t, 0.08, atan.Error(), 1e-12)
}

func TestInverseTrigOutsideDomain(t *testing.T) {
	r := Arcsin(New(1.5, 0.1))
	assert.True(t, math.IsNaN(r.Value()))
	assert.False(t, r.Valid())

	edge := Arccos(New(1, 0.1))
	assert.True(t, math.IsInf(edge.Error(), 1))
}

func TestExpLogRoundTrip(t *testing.T) {
	for _, v := range []float64{1e-3, 0.5, 1, 2.75, 42, 1e6} {
		got := Exp(Log(New(v, 0.01*v)))
		assert.InEpsilon(t, v, got.Value(), 1e-12)
	}
}

func TestZeroErrorPropagatesZero(t *testing.T) {
	a := New(0.3, 0)
	b := New(2.5, 0)

	results := []Measurement{
		a.Add(b), a.Sub(b), a.Mul(b), a.Div(b),
		Sin(a), Cos(a), Tan(a), Pow(a, 3), Log(a), LogBase(a, 2),
		Exp(a), Arcsin(a), Arccos(a), Arctan(a),
	}

	for i, r := range results {
		assert.Equal(t, 0.0, r.Error(), "result %d: %v", i, r)
	}
}

func TestNegativeBaseLogErrorNonNegative(t *testing.T) {
	r := LogBase(New(4, 0.2), 0.5)

	assert.InDelta(t, -2.0, r.Value(), 1e-12)
	assert.GreaterOrEqual(t, r.Error(), 0.0)
}
