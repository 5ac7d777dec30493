package greenops

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja7ad/phantom/pkg/standby"
)

// Compare builds the comparisons for a month that used energyKWh and emitted
// co2Kg.
func Compare(energyKWh, co2Kg float64) (Summary, error) {
	if !finite(energyKWh) || !finite(co2Kg) {
		return Summary{Empty: true}, ErrNotFinite
	}
	if energyKWh < 0 || co2Kg < 0 {
		return Summary{Empty: true}, ErrNegative
	}

	s := Summary{EnergyKWh: energyKWh, CO2Kg: co2Kg}
	candidates := []struct {
		kind  Kind
		value float64
		unit  string
	}{
		{KindLEDBulbHours, energyKWh * 1000 / ReferenceBulbWatts, "hours"},
		{KindMilesDriven, co2Kg / KgCO2PerMile, "miles"},
		{KindPhoneCharges, co2Kg / KgCO2PerPhoneCharge, "charges"},
	}
	for _, c := range candidates {
		if !finite(c.value) {
			return Summary{Empty: true}, ErrNotFinite
		}
		if math.Round(c.value) < 1 {
			continue
		}
		s.Comparisons = append(s.Comparisons, Comparison{
			Kind:  c.kind,
			Value: c.value,
			Text:  FormatCount(c.value),
			Unit:  c.unit,
		})
	}

	if len(s.Comparisons) == 0 {
		s.Empty = true
		return s, nil
	}
	s.Sentence, s.Short = s.render()
	return s, nil
}

// Describe is Compare for a calculator result. Failures are logged and
// yield an empty summary, so display paths never fail on it.
func Describe(res standby.ImpactResult) Summary {
	s, err := Compare(res.MonthlyEnergyKWh, res.MonthlyCO2)
	if err != nil {
		log.Warn().Err(err).
			Float64("energy_kwh", res.MonthlyEnergyKWh).
			Float64("co2_kg", res.MonthlyCO2).
			Msg("standby comparison skipped")
		return Summary{Empty: true}
	}
	return s
}

func (s Summary) render() (sentence, short string) {
	var clauses, compact []string

	if c, ok := s.Find(KindLEDBulbHours); ok {
		clauses = append(clauses, fmt.Sprintf("keeps a %g W LED bulb lit for ~%s hours", ReferenceBulbWatts, c.Text))
		compact = append(compact, fmt.Sprintf("%s h of a %g W LED", c.Text, ReferenceBulbWatts))
	}

	var carbon []string
	if c, ok := s.Find(KindMilesDriven); ok {
		carbon = append(carbon, fmt.Sprintf("driving ~%s miles", c.Text))
		compact = append(compact, c.Text+" mi")
	}
	if c, ok := s.Find(KindPhoneCharges); ok {
		carbon = append(carbon, fmt.Sprintf("charging ~%s smartphones", c.Text))
		compact = append(compact, c.Text+" phone charges")
	}
	if len(carbon) > 0 {
		clauses = append(clauses, "emits as much CO₂eq as "+strings.Join(carbon, " or "))
	}

	return "Each month this standby draw " + strings.Join(clauses, " and "),
		"(≈ " + strings.Join(compact, ", ") + ")"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
