// Package config loads phantom's settings: defaults, then an optional YAML
// file, then PHANTOM_* environment variables. CLI flags are applied last by
// the caller.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ja7ad/phantom/pkg/report"
	"github.com/ja7ad/phantom/pkg/standby"
)

// Environment variables read by Load.
const (
	EnvConfig         = "PHANTOM_CONFIG"
	EnvTariff         = "PHANTOM_TARIFF"
	EnvCO2Factor      = "PHANTOM_CO2_FACTOR"
	EnvDaysInMonth    = "PHANTOM_DAYS_IN_MONTH"
	EnvCurrencySymbol = "PHANTOM_CURRENCY_SYMBOL"
	EnvCurrencyCode   = "PHANTOM_CURRENCY_CODE"
	EnvHTTPAddr       = "PHANTOM_HTTP_ADDR"
	EnvLogLevel       = "PHANTOM_LOG_LEVEL"
)

// DefaultTariff prefills the tariff field, in currency units per kWh.
const DefaultTariff = 0.8255

// Config is the application configuration.
type Config struct {
	Constants standby.Config  `yaml:"constants"`
	Currency  report.Currency `yaml:"currency"`
	Form      FormConfig      `yaml:"form"`
	HTTP      HTTPConfig      `yaml:"http"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// FormConfig holds the values a fresh form starts with.
type FormConfig struct {
	DefaultTariff float64 `yaml:"default_tariff"`
}

// HTTPConfig configures the web form server.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Constants: standby.DefaultConfig(),
		Currency:  report.Currency{Symbol: "S/", Code: "PEN"},
		Form:      FormConfig{DefaultTariff: DefaultTariff},
		HTTP:      HTTPConfig{Addr: ":8080"},
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load builds the configuration. path wins over PHANTOM_CONFIG; an empty
// path with no env var means defaults plus environment only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Constants.AverageDaysInMonth = getenvFloatDefault(EnvDaysInMonth, cfg.Constants.AverageDaysInMonth)
	cfg.Constants.CO2EmissionFactorPerKWh = getenvFloatDefault(EnvCO2Factor, cfg.Constants.CO2EmissionFactorPerKWh)
	cfg.Form.DefaultTariff = getenvFloatDefault(EnvTariff, cfg.Form.DefaultTariff)
	cfg.Currency.Symbol = getenvDefault(EnvCurrencySymbol, cfg.Currency.Symbol)
	cfg.Currency.Code = getenvDefault(EnvCurrencyCode, cfg.Currency.Code)
	cfg.HTTP.Addr = getenvDefault(EnvHTTPAddr, cfg.HTTP.Addr)
	cfg.Logging.Level = getenvDefault(EnvLogLevel, cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks values that would make every calculation meaningless.
func (c Config) Validate() error {
	var errs []error
	if !(c.Constants.AverageDaysInMonth > 0 && c.Constants.AverageDaysInMonth <= 31) {
		errs = append(errs, fmt.Errorf("average_days_in_month must be in (0, 31], got %v", c.Constants.AverageDaysInMonth))
	}
	if f := c.Constants.CO2EmissionFactorPerKWh; !(f > 0) || math.IsInf(f, 0) {
		errs = append(errs, fmt.Errorf("co2_emission_factor_per_kwh must be finite and > 0, got %v", f))
	}
	if t := c.Form.DefaultTariff; !(t >= 0) || math.IsInf(t, 0) {
		errs = append(errs, fmt.Errorf("default_tariff must be finite and >= 0, got %v", t))
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// DefaultTariffText is the tariff field's initial text ("" when unset).
func (c Config) DefaultTariffText() string {
	if c.Form.DefaultTariff <= 0 {
		return ""
	}
	return strconv.FormatFloat(c.Form.DefaultTariff, 'f', -1, 64)
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvFloatDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
