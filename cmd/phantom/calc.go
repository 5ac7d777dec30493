package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ja7ad/phantom/internal/config"
	"github.com/ja7ad/phantom/pkg/report"
	"github.com/ja7ad/phantom/pkg/standby"
)

type calcOpts struct {
	watts  string
	tariff string
	hours  string
	format string
	out    string
}

func newCalcCmd(a *app) *cobra.Command {
	var o calcOpts

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the monthly cost and CO₂ of a standby draw",
		Long: `Validate the three inputs and print the monthly phantom load cost and carbon
footprint. Validation stops at the first bad field: watts, then tariff, then
standby hours. Hours must be above 0 and at most 24.

Formats: ` + formatList() + `. xlsx and pdf need --out unless stdout is
redirected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("tariff") {
				o.tariff = a.cfg.DefaultTariffText()
			}
			return runCalc(cmd.OutOrStdout(), a, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.watts, "watts", "w", "", "standby power draw in watts")
	f.StringVarP(&o.tariff, "tariff", "t", "", "electricity tariff per kWh (default from config, 0.8255)")
	f.StringVarP(&o.hours, "hours", "H", "", "hours per day in standby, (0, 24]")
	f.StringVarP(&o.format, "format", "f", string(report.FormatTable), "output format: "+formatList())
	f.StringVarP(&o.out, "out", "o", "", "write the report to this file instead of stdout")

	return cmd
}

func runCalc(stdout io.Writer, a *app, o calcOpts) error {
	logger := config.ComponentLogger("calc")

	format, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}

	in, res, err := a.calc.Estimate(standby.RawInput{
		Watts:        o.watts,
		Tariff:       o.tariff,
		StandbyHours: o.hours,
	})
	if err != nil {
		var verr *standby.ValidationError
		if errors.As(err, &verr) {
			logger.Debug().Str("field", string(verr.Field)).Str("value", verr.Value).Msg("rejected input")
		}
		return err
	}

	rep := report.New(in, res, a.calc.Config(), a.cfg.Currency)
	logger.Debug().
		Str("id", rep.ID).
		Float64("monthly_cost", res.MonthlyCost).
		Float64("monthly_co2_kg", res.MonthlyCO2).
		Msg("calculated")

	if o.out == "" {
		if format.Binary() && isTerminal(stdout) {
			return fmt.Errorf("refusing to write %s to a terminal, use --out", format)
		}
		return report.Write(stdout, format, rep)
	}

	if err := os.MkdirAll(filepath.Dir(o.out), 0o755); err != nil {
		return err
	}
	fh, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := report.Write(fh, format, rep); err != nil {
		_ = fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return err
	}
	logger.Info().Str("path", o.out).Str("format", string(format)).Msg("report written")
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatList() string {
	names := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
