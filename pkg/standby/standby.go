package standby

import (
	"math"

	"github.com/ja7ad/phantom/pkg/types"
)

// Calculator turns a validated input into its monthly impact.
// It is immutable after New and safe for concurrent use.
type Calculator struct {
	cfg *Config
}

// New creates a calculator with the given constants.
// Finite fields > 0 in cfg override defaults; anything else is treated as
// "unset".
func New(cfg *Config) *Calculator {
	base := _defaultConfig()

	if cfg == nil {
		return &Calculator{cfg: base}
	}

	merged := *base
	if usable(cfg.AverageDaysInMonth) {
		merged.AverageDaysInMonth = cfg.AverageDaysInMonth
	}
	if usable(cfg.CO2EmissionFactorPerKWh) {
		merged.CO2EmissionFactorPerKWh = cfg.CO2EmissionFactorPerKWh
	}

	return &Calculator{cfg: &merged}
}

func usable(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

// Config returns the effective constants.
func (c *Calculator) Config() Config { return *c.cfg }

// Calculate applies the conversion pipeline:
//
//	powerKW          = watts / 1000
//	dailyEnergyKWh   = powerKW * standbyHours
//	monthlyEnergyKWh = dailyEnergyKWh * AverageDaysInMonth
//	monthlyCost      = monthlyEnergyKWh * tariff
//	monthlyCO2       = monthlyEnergyKWh * CO2EmissionFactorPerKWh
//
// The multiplications run in exactly this order so results are reproducible
// bit for bit. Input is assumed to come from Validate; anything else is
// computed with plain float semantics.
func (c *Calculator) Calculate(in ConsumptionInput) ImpactResult {
	powerKW := types.Watts(in.Watts).KW()
	dailyEnergyKWh := powerKW * in.StandbyHours
	monthlyEnergyKWh := dailyEnergyKWh * c.cfg.AverageDaysInMonth

	return ImpactResult{
		MonthlyEnergyKWh: monthlyEnergyKWh,
		MonthlyCost:      monthlyEnergyKWh * in.Tariff,
		MonthlyCO2:       monthlyEnergyKWh * c.cfg.CO2EmissionFactorPerKWh,
	}
}

// Estimate validates raw and, on success, calculates its impact.
func (c *Calculator) Estimate(raw RawInput) (ConsumptionInput, ImpactResult, error) {
	in, err := Validate(raw)
	if err != nil {
		return ConsumptionInput{}, ImpactResult{}, err
	}
	return in, c.Calculate(in), nil
}

//nolint:gochecknoglobals // default calculator is immutable
var defaultCalculator = New(nil)

// Calculate runs the pipeline with the default constants.
func Calculate(in ConsumptionInput) ImpactResult { return defaultCalculator.Calculate(in) }

// Estimate validates and calculates with the default constants.
func Estimate(raw RawInput) (ConsumptionInput, ImpactResult, error) {
	return defaultCalculator.Estimate(raw)
}
