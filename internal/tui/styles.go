package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the form and result views.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorBorder    = lipgloss.Color("63")
	ColorLabel     = lipgloss.Color("250")
	ColorMuted     = lipgloss.Color("244")
	ColorCost      = lipgloss.Color("33")
	ColorCarbon    = lipgloss.Color("34")
	ColorError     = lipgloss.Color("196")
	ColorHighlight = lipgloss.Color("214")
)

// Bar glyphs.
const (
	barFull  = "█"
	barEmpty = "░"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	labelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	focusedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	unitStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	costStyle    = lipgloss.NewStyle().Foreground(ColorCost).Bold(true)
	carbonStyle  = lipgloss.NewStyle().Foreground(ColorCarbon).Bold(true)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)
)
