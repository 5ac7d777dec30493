package report

import (
	"bytes"
	"html/template"
	"io"

	"github.com/ja7ad/phantom/pkg/display"
	"github.com/ja7ad/phantom/pkg/types"
)

type htmlView struct {
	*Report
	Energy string
	Chart  template.HTML
	Zero   bool
}

func writeHTML(w io.Writer, r *Report) error {
	data := htmlView{
		Report: r,
		Energy: types.KWh(r.Result.MonthlyEnergyKWh).Humanized(),
		Chart:  BarSVG(r.Result.MonthlyCost, r.Currency.Symbol),
		Zero:   display.IsZeroImpact(r.Result.MonthlyCost, r.Result.MonthlyCO2),
	}

	var buf bytes.Buffer
	if err := htmlTpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var htmlTpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Standby Consumption Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.small{color:#555}
.big{font-size:28px;font-weight:bold}
</style>

<h1>Standby Consumption Report</h1>
<p class="small">Report {{.ID}} &nbsp;|&nbsp; {{.CreatedAt.Format "2006-01-02 15:04:05"}} UTC</p>

<h2>Input</h2>
<table>
<tr><th>Standby draw (W)</th><td>{{.Input.Watts}}</td></tr>
<tr><th>Tariff ({{.Currency.Code}}/kWh)</th><td>{{.Input.Tariff}}</td></tr>
<tr><th>Standby time (h/day)</th><td>{{.Input.StandbyHours}}</td></tr>
<tr><th>Days per month</th><td>{{.Constants.AverageDaysInMonth}}</td></tr>
<tr><th>Grid factor (kg CO₂eq/kWh)</th><td>{{.Constants.CO2EmissionFactorPerKWh}}</td></tr>
</table>

<h2>Estimated monthly impact</h2>
<p>Standby cost: <span class="big">{{.Cost}}</span> per month</p>
<p>Carbon footprint: <span class="big">{{.CO2}}</span> per month</p>
<p class="small">Energy: {{.Energy}} per month</p>
{{if not .Comparisons.Empty}}<p>{{.Comparisons.Sentence}}.</p>{{end}}
{{if .Chart}}<h2>Monetary cost</h2>
{{.Chart}}{{end}}
{{if .Zero}}<p>The calculated cost and/or carbon footprint are zero. Nice work saving energy and cutting emissions!</p>{{end}}
<p class="small">These are estimates. Real consumption and impact may vary.</p>
<p class="small">The electricity this device draws in standby releases greenhouse gases equivalent to {{.CO2}} into the atmosphere every month.</p>
</html>`))
