package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "time", "watts", "tariff", "standby_hours", "days_in_month", "co2_factor_kg_per_kwh",
	"monthly_energy_kwh", "monthly_cost", "currency", "monthly_co2_kg",
}

func writeCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	if err := cw.Write([]string{
		r.ID,
		r.CreatedAt.Format(time.RFC3339),
		formatFloat(r.Input.Watts),
		formatFloat(r.Input.Tariff),
		formatFloat(r.Input.StandbyHours),
		formatFloat(r.Constants.AverageDaysInMonth),
		formatFloat(r.Constants.CO2EmissionFactorPerKWh),
		formatFloat(r.Result.MonthlyEnergyKWh),
		formatFloat(r.Result.MonthlyCost),
		r.Currency.Code,
		formatFloat(r.Result.MonthlyCO2),
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
