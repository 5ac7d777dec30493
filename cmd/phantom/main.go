package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ja7ad/phantom/internal/config"
	"github.com/ja7ad/phantom/pkg/standby"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

type globalOpts struct {
	configPath string
	logLevel   string
	logFormat  string
	days       float64
	co2Factor  float64
	currency   string
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg  config.Config
	calc *standby.Calculator
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		g globalOpts
		a app
	)

	root := &cobra.Command{
		Use:   "phantom",
		Short: "Phantom load cost and carbon calculator",
		Long: `phantom estimates what a device's standby ("phantom") power draw costs per
month and how much CO₂eq it is responsible for, given its standby wattage,
the electricity tariff and the hours per day it sits in standby.

It runs as a one-shot calculator with report export, as a web form with a
JSON API, or as an interactive terminal form.

Examples:
  phantom calc --watts 5 --tariff 0.8255 --hours 20
  phantom calc --watts 5 --hours 20 --format pdf --out standby.pdf
  phantom serve --addr :8080
  phantom form`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			a.cfg = cfg
			constants := cfg.Constants
			a.calc = standby.New(&constants)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: console or json")
	pf.Float64Var(&g.days, "days", 0, "average days per month (default 30)")
	pf.Float64Var(&g.co2Factor, "co2-factor", 0, "grid emission factor in kg CO₂eq per kWh (default 0.4521)")
	pf.StringVar(&g.currency, "currency", "", "currency symbol printed before costs (default S/)")

	root.AddCommand(
		newCalcCmd(&a),
		newServeCmd(&a),
		newFormCmd(&a),
		newVersionCmd(),
	)
	return root
}

// loadConfig layers flags over the file and environment, then starts the
// logger.
func loadConfig(cmd *cobra.Command, g globalOpts) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("days") {
		cfg.Constants.AverageDaysInMonth = g.days
	}
	if flags.Changed("co2-factor") {
		cfg.Constants.CO2EmissionFactorPerKWh = g.co2Factor
	}
	if flags.Changed("currency") {
		cfg.Currency.Symbol = g.currency
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = g.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	config.InitLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Printing the version must not depend on a valid config.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "phantom", buildVersion())
		},
	}
}

func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}
