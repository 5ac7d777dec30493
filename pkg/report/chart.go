package report

import (
	"bytes"
	"html/template"

	"github.com/ja7ad/phantom/pkg/display"
)

const (
	chartWidth  = 320
	chartHeight = 240
	chartBar    = 60
	chartTop    = 20
	chartBottom = 30
	chartLeft   = 50
)

type chartView struct {
	Width, Height                int
	PlotTop, BaselineY           int
	AxisX                        int
	BarX, BarY, BarW, BarH       int
	LabelX, LabelY, ValueY       int
	AxisMaxLabelX, AxisMaxLabelY int
	AxisLabelX, AxisLabelY       int
	Label, ValueLabel            string
	AxisMaxLabel                 string
}

var chartTpl = template.Must(template.New("chart").Parse(`<svg xmlns="http://www.w3.org/2000/svg" role="img" aria-label="{{.Label}}: {{.ValueLabel}}" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<line x1="{{.AxisX}}" y1="{{.PlotTop}}" x2="{{.AxisX}}" y2="{{.BaselineY}}" stroke="#999"/>
<line x1="{{.AxisX}}" y1="{{.BaselineY}}" x2="{{.Width}}" y2="{{.BaselineY}}" stroke="#999"/>
<text x="{{.AxisMaxLabelX}}" y="{{.AxisMaxLabelY}}" font-size="11" text-anchor="end">{{.AxisMaxLabel}}</text>
<text x="{{.AxisLabelX}}" y="{{.AxisLabelY}}" font-size="11" text-anchor="end">0</text>
<rect x="{{.BarX}}" y="{{.BarY}}" width="{{.BarW}}" height="{{.BarH}}" rx="4" fill="#3B82F6"/>
<text x="{{.LabelX}}" y="{{.ValueY}}" font-size="12" text-anchor="middle">{{.ValueLabel}}</text>
<text x="{{.LabelX}}" y="{{.LabelY}}" font-size="12" text-anchor="middle">{{.Label}}</text>
</svg>`))

// BarSVG renders the monthly cost as a single-bar SVG chart on an axis from
// zero to cost+10. It returns an empty fragment when there is nothing to plot.
func BarSVG(cost float64, symbol string) template.HTML {
	if !display.ShowChart(cost) {
		return ""
	}
	c := display.ChartScale(cost)

	plotH := chartHeight - chartTop - chartBottom
	barH := int(c.Fraction * float64(plotH))
	if barH < 1 {
		barH = 1
	}
	baseline := chartTop + plotH
	barX := chartLeft + (chartWidth-chartLeft-chartBar)/2

	v := chartView{
		Width:         chartWidth,
		Height:        chartHeight,
		PlotTop:       chartTop,
		AxisX:         chartLeft,
		BarX:          barX,
		BarY:          baseline - barH,
		BarH:          barH,
		BarW:          chartBar,
		ValueLabel:    display.Money(c.Value, symbol),
		Label:         "Monthly cost",
		AxisMaxLabel:  display.Fixed(c.AxisMax),
		BaselineY:     baseline,
		LabelX:        barX + chartBar/2,
		LabelY:        baseline + 18,
		ValueY:        baseline - barH - 6,
		AxisMaxLabelX: chartLeft - 4,
		AxisMaxLabelY: chartTop + 4,
		AxisLabelX:    chartLeft - 4,
		AxisLabelY:    baseline + 4,
	}

	var buf bytes.Buffer
	if err := chartTpl.Execute(&buf, v); err != nil {
		return ""
	}
	//nolint:gosec // template output is escaped
	return template.HTML(buf.String())
}
