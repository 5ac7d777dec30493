package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ja7ad/phantom/pkg/display"
)

// writePDF renders a one-page summary. The core PDF fonts are Latin-1 only,
// so CO₂ is spelled CO2 here.
func writePDF(w io.Writer, r *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Standby Consumption Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Report: %s", r.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", r.CreatedAt.Format(time.RFC3339)))
	pdf.Ln(8)

	rows := [][2]string{
		{"Standby draw (W)", formatFloat(r.Input.Watts)},
		{"Tariff (" + r.Currency.Code + "/kWh)", formatFloat(r.Input.Tariff)},
		{"Standby time (h/day)", formatFloat(r.Input.StandbyHours)},
		{"Monthly energy (kWh)", display.Fixed(r.Result.MonthlyEnergyKWh)},
		{"Monthly cost (" + r.Currency.Code + ")", display.Fixed(r.Result.MonthlyCost)},
		{"Monthly CO2 (kg CO2eq)", display.Fixed(r.Result.MonthlyCO2)},
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 6, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Value", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(70, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, row[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, "These are estimates. Real consumption and impact may vary.")

	return pdf.Output(w)
}
