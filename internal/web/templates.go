package web

import "html/template"

var pageTpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Phantom Load Calculator</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:0;background:#1e3a8a;color:#222}
header,main,footer{max-width:36rem;margin:0 auto;padding:16px}
header,footer{color:#fff;text-align:center}
.card{background:#fff;border-radius:12px;padding:24px;margin-bottom:24px}
label{display:block;font-weight:600;margin:12px 0 4px}
input{width:100%;padding:8px;box-sizing:border-box}
.unit{color:#555;font-size:12px}
button{margin-top:16px;width:100%;padding:12px;background:#3B82F6;color:#fff;border:0;border-radius:6px;font-size:16px}
.error{color:#dc2626;font-size:14px}
.big{font-size:40px;font-weight:bold;text-align:center}
.small{color:#555;font-size:12px;text-align:center}
.center{text-align:center}
</style>

<header>
<h1>Phantom Load Calculator</h1>
<p>Find out what the energy your devices draw in standby costs you, and its environmental impact.</p>
</header>

<main>
<form class="card" method="post" action="/"{{if .Err}} aria-describedby="form-error"{{end}}>
<label for="watts">Device standby draw</label>
<input id="watts" name="watts" type="number" min="0.01" step="any" placeholder="e.g. 5" value="{{.Watts}}"{{if .Err}} aria-describedby="form-error"{{end}}>
<span class="unit">Watts (W)</span>

<label for="tariff">Current electricity tariff</label>
<input id="tariff" name="tariff" type="number" min="0.01" step="any" placeholder="e.g. 0.50" value="{{.Tariff}}"{{if .Err}} aria-describedby="form-error"{{end}}>
<span class="unit">{{.Currency.Code}}/kWh</span>

<label for="standby_hours">Average daily standby time</label>
<input id="standby_hours" name="standby_hours" type="number" min="0.01" max="24" step="any" placeholder="e.g. 20" value="{{.StandbyHours}}"{{if .Err}} aria-describedby="form-error"{{end}}>
<span class="unit">Hours/day</span>

{{if .Err}}<p id="form-error" class="error" role="alert" data-field="{{.ErrField}}">{{.Err}}</p>{{end}}

<button type="submit" aria-label="Calculate monthly phantom load cost">Calculate monthly cost</button>
</form>

{{if not .HasResult}}<section class="card center">
<p>Enter your data to calculate the monthly cost and carbon footprint.</p>
</section>{{else}}<section class="card">
<h2 class="center">Estimated monthly impact</h2>
<h3 class="center">Phantom load cost</h3>
<p class="big">{{.Cost}}</p>
<p class="small">per month</p>
<hr>
<h3 class="center">Carbon footprint</h3>
<p class="big">{{.CO2}}</p>
<p class="small">per month</p>
{{if not .Comparisons.Empty}}<p class="center">{{.Comparisons.Sentence}}.</p>{{end}}
{{if .Chart}}<hr>
<h3 class="center">Monetary cost</h3>
<div class="center">{{.Chart}}</div>{{end}}
{{if .Zero}}<p class="center">The calculated cost and/or carbon footprint are zero. Nice work saving energy and cutting emissions!</p>{{end}}
<p class="small">These are estimates. Real consumption and impact may vary.</p>
<p class="small">Download:
<a href="/api/v1/report?format=pdf&amp;watts={{.Watts}}&amp;tariff={{.Tariff}}&amp;standby_hours={{.StandbyHours}}">PDF</a> ·
<a href="/api/v1/report?format=xlsx&amp;watts={{.Watts}}&amp;tariff={{.Tariff}}&amp;standby_hours={{.StandbyHours}}">Excel</a> ·
<a href="/api/v1/report?format=csv&amp;watts={{.Watts}}&amp;tariff={{.Tariff}}&amp;standby_hours={{.StandbyHours}}">CSV</a></p>
<p class="small">Because of the electricity this device uses, even in standby, greenhouse gases equivalent to {{.CO2Figure}} kg of CO₂ are released every month. This is what contributes to global warming and climate change.</p>
</section>{{end}}
</main>

<footer>
<p>Estimates use {{.DaysInMonth}} days per month and {{.Factor}} kg CO₂eq per kWh.</p>
</footer>
</html>`))
