package report

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

func writeXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Standby Consumption Report"},
		{},
		{"Report ID", r.ID},
		{"Generated", r.CreatedAt.Format(time.RFC3339)},
		{"Standby draw (W)", r.Input.Watts},
		{"Tariff (" + r.Currency.Code + "/kWh)", r.Input.Tariff},
		{"Standby time (h/day)", r.Input.StandbyHours},
		{"Days per month", r.Constants.AverageDaysInMonth},
		{"Grid factor (kg CO2eq/kWh)", r.Constants.CO2EmissionFactorPerKWh},
		{"Monthly energy (kWh)", r.Result.MonthlyEnergyKWh},
		{"Monthly cost (" + r.Currency.Code + ")", r.Result.MonthlyCost},
		{"Monthly CO2 (kg)", r.Result.MonthlyCO2},
	}
	if !r.Comparisons.Empty {
		rows = append(rows, []any{"In everyday terms", r.Comparisons.Sentence})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if len(row) == 0 {
			continue
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
