package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{2.4765, "2.48"},
		{3.6, "3.60"},
		// ties use the shortest decimal form, not the binary value
		{1.005, "1.01"},
		{0.004, "0.00"},
		{1234.5678, "1234.57"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Fixed(tc.in), "in=%v", tc.in)
	}
}

func TestMoneyAndMass(t *testing.T) {
	assert.Equal(t, "S/ 2.48", Money(2.4765, "S/"))
	assert.Equal(t, "S/ 2.48", Money(2.4765, " S/ "))
	assert.Equal(t, "2.48", Money(2.4765, ""))
	assert.Equal(t, "$ 3.60", Money(3.6, "$"))
	assert.Equal(t, "1.36 kg CO₂eq", Mass(1.3563))
}

func TestShowChartAndZeroImpact(t *testing.T) {
	assert.True(t, ShowChart(0.01))
	assert.False(t, ShowChart(0))
	assert.True(t, IsZeroImpact(0, 5))
	assert.True(t, IsZeroImpact(5, 0))
	assert.False(t, IsZeroImpact(2.4765, 1.3563))
	// 0.01 W at 0.01 per kWh for 1 h/day rounds to 0.00 but is not zero
	assert.False(t, IsZeroImpact(3e-6, 1.3563e-4))
	assert.True(t, ShowChart(3e-6))
}

func TestNonFinite(t *testing.T) {
	inf := math.Inf(1)
	assert.NotPanics(t, func() {
		assert.Equal(t, Infinity, Fixed(inf))
		assert.Equal(t, "-"+Infinity, Fixed(math.Inf(-1)))
		assert.Equal(t, NotANumber, Fixed(math.NaN()))
		assert.Equal(t, "S/ ∞", Money(inf, "S/"))
		assert.Equal(t, "∞ kg CO₂eq", Mass(inf))
		assert.True(t, math.IsInf(Round(inf), 1))
	})

	assert.False(t, ShowChart(inf))
	assert.False(t, ShowChart(math.NaN()))
	assert.False(t, IsZeroImpact(inf, 1))

	c := ChartScale(inf)
	assert.Equal(t, 0.0, c.Value)
	assert.Equal(t, ChartHeadroom, c.AxisMax)
	assert.Equal(t, 0.0, c.Fraction)
}

func TestChartScale(t *testing.T) {
	c := ChartScale(2.4765)
	assert.InDelta(t, 2.48, c.Value, 1e-12)
	assert.InDelta(t, 12.48, c.AxisMax, 1e-12)
	assert.InDelta(t, 2.48/12.48, c.Fraction, 1e-12)

	z := ChartScale(-1)
	assert.Equal(t, 0.0, z.Value)
	assert.Equal(t, ChartHeadroom, z.AxisMax)
	assert.Equal(t, 0.0, z.Fraction)
}
