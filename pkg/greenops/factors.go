package greenops

// ReferenceBulbWatts is the LED bulb the energy comparison is expressed in.
const ReferenceBulbWatts = 10.0

// EPA greenhouse gas equivalencies, kg CO₂eq per unit.
// https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
const (
	KgCO2PerMile        = 0.192
	KgCO2PerPhoneCharge = 0.00822
)

// Formatting thresholds.
const (
	million     = 1e6
	billion     = 1e9
	scientificN = 1e12
)
