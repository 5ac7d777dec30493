package standby

// Default constants. Changing them changes every published figure.
const (
	// DefaultAverageDaysInMonth scales daily energy to a month.
	DefaultAverageDaysInMonth = 30.0

	// DefaultCO2EmissionFactorPerKWh is the grid intensity in kg CO₂eq per kWh.
	DefaultCO2EmissionFactorPerKWh = 0.4521

	// MaxStandbyHours is the inclusive upper bound for daily standby time.
	MaxStandbyHours = 24.0
)

// Config holds the conversion constants.
// Units:
//   - AverageDaysInMonth: days
//   - CO2EmissionFactorPerKWh: kg CO₂eq per kWh
type Config struct {
	AverageDaysInMonth      float64 `yaml:"average_days_in_month" json:"average_days_in_month"`
	CO2EmissionFactorPerKWh float64 `yaml:"co2_emission_factor_per_kwh" json:"co2_emission_factor_per_kwh"`
}

// _defaultConfig returns a Config pre-filled with the published constants.
func _defaultConfig() *Config {
	return &Config{
		AverageDaysInMonth:      DefaultAverageDaysInMonth,
		CO2EmissionFactorPerKWh: DefaultCO2EmissionFactorPerKWh,
	}
}

// DefaultConfig returns a copy of the default constants.
func DefaultConfig() Config { return *_defaultConfig() }

// RawInput is the unparsed text of the three form fields.
type RawInput struct {
	Watts        string `json:"watts"`
	Tariff       string `json:"tariff"`
	StandbyHours string `json:"standby_hours"`
}

// ConsumptionInput is a validated request. Only Validate produces one, so all
// fields are strictly positive and StandbyHours is at most 24.
type ConsumptionInput struct {
	Watts        float64 `json:"watts"`
	Tariff       float64 `json:"tariff"`
	StandbyHours float64 `json:"standby_hours"`
}

// ImpactResult is the monthly impact of one device's standby draw.
type ImpactResult struct {
	MonthlyEnergyKWh float64 `json:"monthly_energy_kwh"`
	MonthlyCost      float64 `json:"monthly_cost"`
	MonthlyCO2       float64 `json:"monthly_co2_kg"`
}
