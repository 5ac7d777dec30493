// Package tui is the interactive terminal version of the calculator form.
package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ja7ad/phantom/pkg/greenops"
	"github.com/ja7ad/phantom/pkg/report"
	"github.com/ja7ad/phantom/pkg/standby"
)

// FormState is the lifecycle state of the form.
type FormState int

const (
	// FormStateEditing means the form accepts input.
	FormStateEditing FormState = iota
	// FormStateQuitting means the program is exiting.
	FormStateQuitting
)

// Field order, also the tab order.
const (
	fieldWatts = iota
	fieldTariff
	fieldHours
	fieldCount
)

const (
	formDefaultWidth = 60
	inputCharLimit   = 32
)

type fieldLabel struct {
	label       string
	unit        string
	placeholder string
}

// FormModel is the Bubble Tea model for the calculator form. It owns the
// field text, the last error and the last result; the calculator itself is
// stateless.
type FormModel struct {
	inputs  []textinput.Model
	fields  []fieldLabel
	focused int

	calc     *standby.Calculator
	currency report.Currency

	input       standby.ConsumptionInput
	result      *standby.ImpactResult
	comparisons greenops.Summary
	err         string
	errField    standby.Field

	state FormState
	width int
}

// NewFormModel creates the form with the tariff prefilled and the watts field
// focused. A nil calc uses the default constants.
func NewFormModel(calc *standby.Calculator, currency report.Currency, defaultTariff string) *FormModel {
	if calc == nil {
		calc = standby.New(nil)
	}
	unit := currency.Code + "/kWh"
	if currency.Code == "" {
		unit = "per kWh"
	}

	m := &FormModel{
		fields: []fieldLabel{
			{label: "Device standby draw", unit: "Watts (W)", placeholder: "e.g. 5"},
			{label: "Current electricity tariff", unit: unit, placeholder: "e.g. 0.50"},
			{label: "Average daily standby time", unit: "Hours/day", placeholder: "e.g. 20"},
		},
		calc:     calc,
		currency: currency,
		state:    FormStateEditing,
		width:    formDefaultWidth,
	}

	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = m.fields[i].placeholder
		ti.CharLimit = inputCharLimit
		m.inputs[i] = ti
	}
	m.inputs[fieldTariff].SetValue(defaultTariff)
	m.inputs[fieldWatts].Focus()

	return m
}

// Init initializes the model.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.state = FormStateQuitting
			return m, tea.Quit
		case "tab", "down":
			return m, m.focus((m.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.focus((m.focused + fieldCount - 1) % fieldCount)
		case "enter":
			return m, m.Submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *FormModel) focus(i int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = i
	return m.inputs[i].Focus()
}

// Submit validates the field text. On success the result is replaced; on
// failure the error is shown, the previous result stays and focus moves to the
// failing field. The returned command belongs to the newly focused input.
func (m *FormModel) Submit() tea.Cmd {
	m.err, m.errField = "", ""

	in, res, err := m.calc.Estimate(m.Raw())
	if err != nil {
		m.err = err.Error()
		var verr *standby.ValidationError
		if errors.As(err, &verr) {
			m.errField = verr.Field
			return m.focusField(verr.Field)
		}
		return nil
	}

	m.input = in
	m.result = &res
	m.comparisons = greenops.Describe(res)
	return nil
}

func (m *FormModel) focusField(f standby.Field) tea.Cmd {
	switch f {
	case standby.FieldWatts:
		return m.focus(fieldWatts)
	case standby.FieldTariff:
		return m.focus(fieldTariff)
	case standby.FieldStandbyHours:
		return m.focus(fieldHours)
	}
	return nil
}

// Raw returns the current field text.
func (m *FormModel) Raw() standby.RawInput {
	return standby.RawInput{
		Watts:        m.inputs[fieldWatts].Value(),
		Tariff:       m.inputs[fieldTariff].Value(),
		StandbyHours: m.inputs[fieldHours].Value(),
	}
}

// Result returns the last successful result, or nil.
func (m *FormModel) Result() *standby.ImpactResult { return m.result }

// Err returns the message of the last failed submit, or "".
func (m *FormModel) Err() string { return m.err }

// State returns the current lifecycle state.
func (m *FormModel) State() FormState { return m.state }

// Run drives m as a full-screen program until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, m *FormModel, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
