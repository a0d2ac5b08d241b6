package measurement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestNewAndAccessors(t *testing.T) {
	m := New(20, 0.5)

	assert.Equal(t, 20.0, m.Value())
	assert.Equal(t, 0.5, m.Error())
	assert.InDelta(t, 0.025, m.Relative(), tol)
	assert.True(t, m.Valid())
}

func TestString(t *testing.T) {
	tests := []struct {
		m    Measurement
		want string
	}{
		{New(20, 0.5), "20 +- 0.5"},
		{New(20.0/15.0, 0.0344981), "1.3333 +- 0.0345"},
		{New(-0.00001, 0), "0 +- 0"},
		{New(math.Inf(1), math.NaN()), "+Inf +- NaN"},
		{New(1e305, 1), "1e+305 +- 1"},
		{New(-1e305, 2.5e300), "-1e+305 +- 2.5e+300"},
		{New(1e20, 0), "1e+20 +- 0"},
		{New(250000000000.125, 0.00004), "250000000000.125 +- 0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.String())
	}
}

func TestAddSub(t *testing.T) {
	a := New(20, 0.5)
	b := New(15, 0.1)

	sum := a.Add(b)
	assert.InDelta(t, 35.0, sum.Value(), tol)
	assert.InDelta(t, math.Sqrt(0.26), sum.Error(), tol)

	diff := a.Sub(b)
	assert.InDelta(t, 5.0, diff.Value(), tol)
	assert.InDelta(t, math.Sqrt(0.26), diff.Error(), tol)

	// operands untouched
	assert.Equal(t, New(20, 0.5), a)
	assert.Equal(t, New(15, 0.1), b)
}

func TestAddCommutativeAndAssociative(t *testing.T) {
	a := New(1.5, 0.2)
	b := New(-3.25, 0.7)
	c := New(10, 1.1)

	assert.Equal(t, a.Add(b), b.Add(a))

	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	assert.True(t, left.Equal(right, 1e-12), "left=%v right=%v", left, right)
}

func TestSubSelfDoesNotCancel(t *testing.T) {
	a := New(7.3, 0.4)
	d := a.Sub(a)

	assert.Equal(t, 0.0, d.Value())
	assert.InDelta(t, math.Sqrt2*0.4, d.Error(), tol)
}

func TestMulDiv(t *testing.T) {
	a := New(20, 0.5)
	b := New(15, 0.1)
	rel := math.Sqrt(math.Pow(0.5/20, 2) + math.Pow(0.1/15, 2))

	prod := a.Mul(b)
	assert.InDelta(t, 300.0, prod.Value(), tol)
	assert.InDelta(t, 300*rel, prod.Error(), tol)

	quot := a.Div(b)
	assert.InDelta(t, 1.3333, quot.Value(), 1e-4)
	assert.InDelta(t, 0.0345, quot.Error(), 1e-4)
	assert.InDelta(t, 20.0/15.0*rel, quot.Error(), tol)
}

func TestMulNegativeKeepsErrorPositive(t *testing.T) {
	p := New(-4, 0.2).Mul(New(3, 0.3))

	assert.InDelta(t, -12.0, p.Value(), tol)
	assert.Greater(t, p.Error(), 0.0)
}

func TestScaleNeg(t *testing.T) {
	m := New(2.5, 0.1)

	s := m.Scale(-4)
	assert.InDelta(t, -10.0, s.Value(), tol)
	assert.InDelta(t, 0.4, s.Error(), tol)

	n := m.Neg()
	assert.Equal(t, -2.5, n.Value())
	assert.Equal(t, 0.1, n.Error())
}

func TestDivideByZeroFollowsIEEE(t *testing.T) {
	r := New(1, 0.1).Div(New(0, 0.1))

	assert.True(t, math.IsInf(r.Value(), 1))
	assert.False(t, r.Valid())
}
