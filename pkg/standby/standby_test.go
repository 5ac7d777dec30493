package standby

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expect mirrors the pipeline step by step.
func expect(cfg Config, in ConsumptionInput) ImpactResult {
	powerKW := in.Watts / 1000
	daily := powerKW * in.StandbyHours
	monthly := daily * cfg.AverageDaysInMonth
	return ImpactResult{
		MonthlyEnergyKWh: monthly,
		MonthlyCost:      monthly * in.Tariff,
		MonthlyCO2:       monthly * cfg.CO2EmissionFactorPerKWh,
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(nil)
	assert.Equal(t, 30.0, c.Config().AverageDaysInMonth)
	assert.Equal(t, DefaultCO2EmissionFactorPerKWh, c.Config().CO2EmissionFactorPerKWh)
	assert.Equal(t, DefaultConfig(), c.Config())
}

func TestNew_PositiveOnlyOverrides(t *testing.T) {
	c := New(&Config{AverageDaysInMonth: 30.4375, CO2EmissionFactorPerKWh: -1})
	assert.Equal(t, 30.4375, c.Config().AverageDaysInMonth)
	assert.Equal(t, DefaultCO2EmissionFactorPerKWh, c.Config().CO2EmissionFactorPerKWh)

	c = New(&Config{CO2EmissionFactorPerKWh: 0.2})
	assert.Equal(t, DefaultAverageDaysInMonth, c.Config().AverageDaysInMonth)
	assert.Equal(t, 0.2, c.Config().CO2EmissionFactorPerKWh)
}

func TestCalculate_Scenario_DefaultTariff(t *testing.T) {
	in, res, err := Estimate(RawInput{"5", "0.8255", "20"})
	require.NoError(t, err)
	assert.Equal(t, ConsumptionInput{5, 0.8255, 20}, in)

	assert.InDelta(t, 3.0, res.MonthlyEnergyKWh, 1e-12)
	assert.InDelta(t, 2.4765, res.MonthlyCost, 1e-12)
	assert.InDelta(t, 3.0*DefaultCO2EmissionFactorPerKWh, res.MonthlyCO2, 1e-12)
	t.Logf("energy=%.6f kWh cost=%.6f co2=%.6f kg", res.MonthlyEnergyKWh, res.MonthlyCost, res.MonthlyCO2)
}

func TestCalculate_Scenario_FullDay(t *testing.T) {
	in, res, err := Estimate(RawInput{"10", "0.5", "24"})
	require.NoError(t, err)
	assert.Equal(t, 24.0, in.StandbyHours)
	assert.InDelta(t, 7.2, res.MonthlyEnergyKWh, 1e-12)
	assert.InDelta(t, 3.6, res.MonthlyCost, 1e-12)
}

func TestEstimate_InvalidNeverCalculates(t *testing.T) {
	in, res, err := Estimate(RawInput{"0", "1", "10"})
	require.ErrorIs(t, err, ErrInvalidWatts)
	assert.Equal(t, ConsumptionInput{}, in)
	assert.Equal(t, ImpactResult{}, res)

	_, _, err = Estimate(RawInput{"10", "0.5", "25"})
	require.ErrorIs(t, err, ErrInvalidStandbyHours)
}

func TestCalculate_MatchesStepwisePipeline(t *testing.T) {
	cfg := Config{AverageDaysInMonth: 30, CO2EmissionFactorPerKWh: 0.4521}
	c := New(&cfg)
	inputs := []ConsumptionInput{
		{0.3, 0.8255, 23.5},
		{1.7, 0.1234, 0.25},
		{12, 2.5, 24},
		{1e-9, 1e-9, 1e-9},
		{1e12, 1e6, 24},
		{1e300, 1e10, 24}, // cost overflows to +Inf
	}
	for i, in := range inputs {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			// bit-identical, not just close
			assert.Equal(t, expect(cfg, in), c.Calculate(in))
		})
	}
}

func TestEstimate_ExtremeMagnitudeOverflows(t *testing.T) {
	var res ImpactResult
	require.NotPanics(t, func() {
		var err error
		_, res, err = Estimate(RawInput{Watts: "1e300", Tariff: "1e10", StandbyHours: "24"})
		require.NoError(t, err)
	})
	assert.True(t, math.IsInf(res.MonthlyCost, 1))
	assert.False(t, math.IsInf(res.MonthlyCO2, 0))
	assert.Greater(t, res.MonthlyCO2, 0.0)
}

func TestNew_IgnoresNonFiniteOverrides(t *testing.T) {
	c := New(&Config{AverageDaysInMonth: math.NaN(), CO2EmissionFactorPerKWh: math.Inf(1)})
	assert.Equal(t, DefaultConfig(), c.Config())
}

func TestCalculate_Monotonic(t *testing.T) {
	base := ConsumptionInput{Watts: 4, Tariff: 0.7, StandbyHours: 10}
	r0 := Calculate(base)

	moreWatts := base
	moreWatts.Watts = 4.5
	r := Calculate(moreWatts)
	assert.Greater(t, r.MonthlyCost, r0.MonthlyCost)
	assert.Greater(t, r.MonthlyCO2, r0.MonthlyCO2)

	moreTariff := base
	moreTariff.Tariff = 0.9
	r = Calculate(moreTariff)
	assert.Greater(t, r.MonthlyCost, r0.MonthlyCost)
	assert.Equal(t, r0.MonthlyCO2, r.MonthlyCO2, "CO2 must not depend on tariff")

	moreHours := base
	moreHours.StandbyHours = 11
	r = Calculate(moreHours)
	assert.Greater(t, r.MonthlyCost, r0.MonthlyCost)
	assert.Greater(t, r.MonthlyCO2, r0.MonthlyCO2)
}

func TestCalculate_ScalingLaw(t *testing.T) {
	for _, h := range []float64{24, 20, 13.7, 1, 0.02} {
		in := ConsumptionInput{Watts: 7.3, Tariff: 0.8255, StandbyHours: h}
		half := in
		half.StandbyHours = h / 2
		assert.Equal(t, Calculate(in).MonthlyCost, Calculate(half).MonthlyCost*2, "h=%v", h)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	in := ConsumptionInput{Watts: 3.3, Tariff: 0.61, StandbyHours: 17.25}
	a := Calculate(in)
	b := Calculate(in)
	assert.Equal(t, a, b)
}

func TestCalculate_AlwaysPositiveForValidInput(t *testing.T) {
	for _, raw := range []RawInput{{"0.01", "0.01", "0.01"}, {"5", "0.8255", "20"}, {"100", "5", "24"}} {
		_, res, err := Estimate(raw)
		require.NoError(t, err)
		assert.Greater(t, res.MonthlyCost, 0.0)
		assert.Greater(t, res.MonthlyCO2, 0.0)
	}
}

func ExampleEstimate() {
	_, res, err := Estimate(RawInput{Watts: "10", Tariff: "0.5", StandbyHours: "24"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("energy=%.2f kWh cost=%.2f\n", res.MonthlyEnergyKWh, res.MonthlyCost)
	// Output: energy=7.20 kWh cost=3.60
}

func ExampleValidate() {
	_, err := Validate(RawInput{Watts: "10", Tariff: "0.5", StandbyHours: "25"})
	fmt.Println(err)
	// Output: standby time must be a positive number between 0 and 24 hours.
}
