package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ja7ad/phantom/pkg/types"
)

func writeTable(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	fmt.Fprintf(tw, "Standby draw\t%s\n", types.Watts(r.Input.Watts).Humanized())
	fmt.Fprintf(tw, "Tariff\t%s %s/kWh\n", r.Currency.Symbol, formatFloat(r.Input.Tariff))
	fmt.Fprintf(tw, "Standby time\t%s h/day\n", formatFloat(r.Input.StandbyHours))
	fmt.Fprintf(tw, "Monthly energy\t%s\n", types.KWh(r.Result.MonthlyEnergyKWh).Humanized())
	fmt.Fprintf(tw, "Monthly cost\t%s\n", r.Cost())
	fmt.Fprintf(tw, "Carbon footprint\t%s\n", r.CO2())
	if !r.Comparisons.Empty {
		fmt.Fprintf(tw, "In everyday terms\t%s\n", r.Comparisons.Short)
	}
	return tw.Flush()
}
