// Package greenops puts one month of standby waste into everyday terms: how
// long the same electricity would keep an LED bulb lit, and how far a car
// would drive or how many phones could be charged for the same CO₂eq.
package greenops

import "fmt"

// Kind identifies what a Comparison is measured against.
type Kind int

const (
	// KindLEDBulbHours is derived from energy: hours of a ReferenceBulbWatts LED.
	KindLEDBulbHours Kind = iota

	// KindMilesDriven is derived from CO₂eq: miles in an average passenger car.
	KindMilesDriven

	// KindPhoneCharges is derived from CO₂eq: full smartphone charges.
	KindPhoneCharges
)

func (k Kind) String() string {
	switch k {
	case KindLEDBulbHours:
		return "LEDBulbHours"
	case KindMilesDriven:
		return "MilesDriven"
	case KindPhoneCharges:
		return "PhoneCharges"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Comparison is one everyday figure for the month.
type Comparison struct {
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
	// Text is Value formatted for people, e.g. "300" or "~1.5 million".
	Text string `json:"text"`
	Unit string `json:"unit"`
}

// Summary collects the comparisons for one standby result. Comparisons that
// round to less than one unit are left out; Empty means none survived.
type Summary struct {
	EnergyKWh   float64      `json:"energy_kwh"`
	CO2Kg       float64      `json:"co2_kg"`
	Comparisons []Comparison `json:"comparisons,omitempty"`

	// Sentence is the prose form used by the result card, without a final period.
	Sentence string `json:"sentence,omitempty"`

	// Short is the one-line form used by the terminal table.
	Short string `json:"short,omitempty"`

	Empty bool `json:"empty"`
}

// Find returns the comparison of kind k, if present.
func (s Summary) Find(k Kind) (Comparison, bool) {
	for _, c := range s.Comparisons {
		if c.Kind == k {
			return c, true
		}
	}
	return Comparison{}, false
}
