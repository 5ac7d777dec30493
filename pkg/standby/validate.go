package standby

import (
	"math"
	"strconv"
	"strings"
)

// Validate parses the three raw fields and checks them in order: watts,
// tariff, standby hours. The first failing field is reported as a
// *ValidationError and the remaining fields are not inspected.
//
// Standby hours live in the half-open interval (0, 24]: zero is rejected and
// a full day is accepted.
func Validate(raw RawInput) (ConsumptionInput, error) {
	watts, ok := parseNumber(raw.Watts)
	if !ok || watts <= 0 {
		return ConsumptionInput{}, &ValidationError{Field: FieldWatts, Value: raw.Watts, Err: ErrInvalidWatts}
	}

	tariff, ok := parseNumber(raw.Tariff)
	if !ok || tariff <= 0 {
		return ConsumptionInput{}, &ValidationError{Field: FieldTariff, Value: raw.Tariff, Err: ErrInvalidTariff}
	}

	hours, ok := parseNumber(raw.StandbyHours)
	if !ok || hours <= 0 || hours > MaxStandbyHours {
		return ConsumptionInput{}, &ValidationError{Field: FieldStandbyHours, Value: raw.StandbyHours, Err: ErrInvalidStandbyHours}
	}

	return ConsumptionInput{Watts: watts, Tariff: tariff, StandbyHours: hours}, nil
}

// parseNumber reads a finite decimal number, ignoring surrounding whitespace.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a usable quantity.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
