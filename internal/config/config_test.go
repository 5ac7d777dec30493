package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/phantom/pkg/standby"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phantom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, standby.DefaultConfig(), cfg.Constants)
	assert.Equal(t, "0.8255", cfg.DefaultTariffText())
	assert.Equal(t, "S/", cfg.Currency.Symbol)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
constants:
  average_days_in_month: 30.4375
  co2_emission_factor_per_kwh: 0.2
currency:
  symbol: "$"
  code: USD
form:
  default_tariff: 0.15
http:
  addr: "127.0.0.1:9000"
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30.4375, cfg.Constants.AverageDaysInMonth)
	assert.Equal(t, 0.2, cfg.Constants.CO2EmissionFactorPerKWh)
	assert.Equal(t, "$", cfg.Currency.Symbol)
	assert.Equal(t, "USD", cfg.Currency.Code)
	assert.Equal(t, "0.15", cfg.DefaultTariffText())
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "constants:\n  co2_emission_factor_per_kwh: 0.2\n")
	t.Setenv(EnvCO2Factor, "0.3")
	t.Setenv(EnvTariff, "1.1")
	t.Setenv(EnvCurrencySymbol, "€")
	t.Setenv(EnvHTTPAddr, ":9999")
	t.Setenv(EnvDaysInMonth, "not-a-number") // ignored

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Constants.CO2EmissionFactorPerKWh)
	assert.Equal(t, 30.0, cfg.Constants.AverageDaysInMonth)
	assert.Equal(t, 1.1, cfg.Form.DefaultTariff)
	assert.Equal(t, "€", cfg.Currency.Symbol)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeFile(t, "currency:\n  code: EUR\n")
	t.Setenv(EnvConfig, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency.Code)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")

	_, err = Load(writeFile(t, "constants: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")

	_, err = Load(writeFile(t, "constants:\n  co2_emission_factor_per_kwh: -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "co2_emission_factor_per_kwh")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Constants.AverageDaysInMonth = 40
	cfg.HTTP.Addr = " "
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "average_days_in_month")
	assert.Contains(t, err.Error(), "http.addr")
}

func TestValidate_NonFinite(t *testing.T) {
	cases := map[string]func(*Config){
		"factor inf":  func(c *Config) { c.Constants.CO2EmissionFactorPerKWh = math.Inf(1) },
		"factor nan":  func(c *Config) { c.Constants.CO2EmissionFactorPerKWh = math.NaN() },
		"days nan":    func(c *Config) { c.Constants.AverageDaysInMonth = math.NaN() },
		"days inf":    func(c *Config) { c.Constants.AverageDaysInMonth = math.Inf(1) },
		"tariff nan":  func(c *Config) { c.Form.DefaultTariff = math.NaN() },
		"tariff +inf": func(c *Config) { c.Form.DefaultTariff = math.Inf(1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoad_EnvInfinityRejected(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvCO2Factor, "Inf")
	_, err := Load("")
	require.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv(EnvCO2Factor, "")
	t.Setenv(EnvTariff, "NaN")
	_, err = Load("")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultTariffText_Unset(t *testing.T) {
	cfg := Default()
	cfg.Form.DefaultTariff = 0
	assert.Equal(t, "", cfg.DefaultTariffText())
}

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(&buf, "warn", "json")
	t.Cleanup(func() { InitLogger(os.Stderr, "info", "console") })

	assert.Equal(t, zerolog.WarnLevel, GetLogger().GetLevel())

	l := ComponentLogger("test")
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"component":"test"`)
	assert.Contains(t, buf.String(), "shown")

	InitLogger(&buf, "bogus", "json")
	assert.Equal(t, zerolog.InfoLevel, GetLogger().GetLevel())
}
