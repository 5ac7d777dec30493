// Package display formats impact figures for people: two-decimal money and
// mass strings plus the scale of the cost bar chart.
package display

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Places is the number of decimals shown for money and mass.
	Places = 2

	// MassSuffix follows every CO₂ figure.
	MassSuffix = "kg CO₂eq"

	// ChartHeadroom is added to the cost to get the chart's axis maximum.
	ChartHeadroom = 10.0

	// Infinity and NotANumber stand in for figures that overflowed float64.
	Infinity   = "∞"
	NotANumber = "NaN"
)

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// Fixed rounds v half away from zero and renders exactly Places decimals.
// Ties are decided on the shortest decimal form of v, so 1.005 gives "1.01".
// Non-finite values render as Infinity, "-"+Infinity or NotANumber.
func Fixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return NotANumber
	case math.IsInf(v, 1):
		return Infinity
	case math.IsInf(v, -1):
		return "-" + Infinity
	}
	return decimal.NewFromFloat(v).StringFixed(Places)
}

// Round returns v rounded to Places decimals. Non-finite values are returned
// unchanged.
func Round(v float64) float64 {
	if !finite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(Places).Float64()
	return f
}

// Money renders a cost with its currency symbol, e.g. "S/ 2.48".
func Money(v float64, symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Fixed(v)
	}
	return symbol + " " + Fixed(v)
}

// Mass renders a CO₂ mass, e.g. "1.36 kg CO₂eq".
func Mass(v float64) string {
	return Fixed(v) + " " + MassSuffix
}

// ShowChart reports whether a cost is worth charting: positive and finite.
func ShowChart(cost float64) bool { return cost > 0 && finite(cost) }

// IsZeroImpact reports whether either figure is exactly zero.
func IsZeroImpact(cost, co2 float64) bool {
	return cost == 0 || co2 == 0
}

// Chart describes a single-bar cost chart.
type Chart struct {
	// Value is the rounded cost the bar represents.
	Value float64
	// AxisMax is the top of the value axis.
	AxisMax float64
	// Fraction is Value/AxisMax in [0, 1].
	Fraction float64
}

// ChartScale lays out the cost bar on an axis running from 0 to cost+10.
// A non-finite cost yields an empty chart.
func ChartScale(cost float64) Chart {
	v := Round(cost)
	if v < 0 || !finite(v) {
		v = 0
	}
	axis := v + ChartHeadroom
	return Chart{Value: v, AxisMax: axis, Fraction: v / axis}
}
