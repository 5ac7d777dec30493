package types

import "fmt"

// Watts is an instantaneous power draw in watts.
type Watts float64

// KW returns the power in kilowatts.
func (w Watts) KW() float64 { return float64(w) / 1000 }

// Humanized returns a human-readable string with automatic unit (mW, W, kW).
func (w Watts) Humanized() string {
	v := float64(w)
	switch {
	case v >= 1000:
		return fmt.Sprintf("%.2f kW", v/1000)
	case v > 0 && v < 1:
		return fmt.Sprintf("%.0f mW", v*1000)
	default:
		return fmt.Sprintf("%.2f W", v)
	}
}

// KWh is an amount of energy in kilowatt-hours.
type KWh float64

// Humanized returns a human-readable string with automatic unit (Wh, kWh, MWh).
func (e KWh) Humanized() string {
	v := float64(e)
	switch {
	case v >= 1000:
		return fmt.Sprintf("%.2f MWh", v/1000)
	case v < 1:
		return fmt.Sprintf("%.2f Wh", v*1000)
	default:
		return fmt.Sprintf("%.2f kWh", v)
	}
}
