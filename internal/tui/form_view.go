package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ja7ad/phantom/pkg/display"
)

const (
	barMaxWidth = 40
	boxPadding  = 8
)

// View renders the current view.
func (m *FormModel) View() string {
	if m.state == FormStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Phantom Load Calculator"))
	sb.WriteString("\n\n")

	for i, f := range m.fields {
		label := labelStyle
		if i == m.focused {
			label = focusedStyle
		}
		sb.WriteString(label.Render(f.label))
		sb.WriteString(" ")
		sb.WriteString(unitStyle.Render("(" + f.unit + ")"))
		sb.WriteString("\n")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n\n")
	}

	if m.err != "" {
		sb.WriteString(errorStyle.Render(m.err))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.renderResult())
	sb.WriteString("\n")
	sb.WriteString(RenderFormHelp())

	return sb.String()
}

func (m *FormModel) renderResult() string {
	if m.result == nil {
		return mutedStyle.Render("Enter your data to calculate the monthly cost and carbon footprint.") + "\n"
	}
	res := m.result

	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Estimated monthly impact"))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Phantom load cost: "))
	sb.WriteString(costStyle.Render(display.Money(res.MonthlyCost, m.currency.Symbol)))
	sb.WriteString(mutedStyle.Render(" per month"))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Carbon footprint:  "))
	sb.WriteString(carbonStyle.Render(display.Mass(res.MonthlyCO2)))
	sb.WriteString(mutedStyle.Render(" per month"))
	sb.WriteString("\n")

	if bar := RenderCostBar(res.MonthlyCost, m.currency.Symbol, m.barWidth()); bar != "" {
		sb.WriteString("\n")
		sb.WriteString(bar)
		sb.WriteString("\n")
	}

	if !m.comparisons.Empty {
		sb.WriteString("\n")
		sb.WriteString(m.comparisons.Sentence + ".")
		sb.WriteString("\n")
	}

	if display.IsZeroImpact(res.MonthlyCost, res.MonthlyCO2) {
		sb.WriteString("\n")
		sb.WriteString("The calculated cost and/or carbon footprint are zero. Nice work saving energy and cutting emissions!")
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("These are estimates. Real consumption and impact may vary."))

	box := resultBoxStyle
	if m.width > boxPadding {
		box = box.MaxWidth(m.width)
	}
	return box.Render(sb.String()) + "\n"
}

func (m *FormModel) barWidth() int {
	w := m.width - 2*boxPadding
	if w <= 0 || w > barMaxWidth {
		return barMaxWidth
	}
	return w
}

// RenderCostBar draws the monthly cost as a horizontal bar on an axis from
// zero to cost+10. It returns "" when the cost is not positive.
func RenderCostBar(cost float64, symbol string, width int) string {
	if !display.ShowChart(cost) || width <= 0 {
		return ""
	}
	c := display.ChartScale(cost)

	filled := int(c.Fraction*float64(width) + 0.5)
	if filled < 1 {
		filled = 1
	}
	if filled > width {
		filled = width
	}

	bar := costStyle.Render(strings.Repeat(barFull, filled)) +
		unitStyle.Render(strings.Repeat(barEmpty, width-filled))

	axis := lipgloss.JoinHorizontal(lipgloss.Top,
		unitStyle.Render("0"),
		strings.Repeat(" ", max(width-1-len(display.Fixed(c.AxisMax)), 1)),
		unitStyle.Render(display.Fixed(c.AxisMax)),
	)

	return bar + " " + display.Money(c.Value, symbol) + "\n" + axis
}

// RenderFormHelp renders the key bindings.
func RenderFormHelp() string {
	return mutedStyle.Render("tab/shift+tab: move • enter: calculate • esc: quit")
}
