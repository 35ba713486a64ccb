package styles

import (
	"calcterm/internal/calculator"
	"calcterm/internal/output"

	"github.com/charmbracelet/lipgloss"
)

const ButtonWidth = 7

var Subtle = lipgloss.AdaptiveColor{Light: "#9a9a9a", Dark: "#6c6c6c"}

// Styles are the lipgloss styles derived from one calculator palette.
type Styles struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Display     lipgloss.Style
	Buttons     map[string]lipgloss.Style // keyed by output.Role*
	HistoryBox  lipgloss.Style
	HistoryLine lipgloss.Style
	Placeholder lipgloss.Style
	Help        lipgloss.Style
}

// For builds the styles of palette p.
func For(p calculator.Palette) Styles {
	bg := lipgloss.Color(p.Background)
	text := lipgloss.Color(p.Text)
	border := lipgloss.Color(p.Border)

	button := lipgloss.NewStyle().
		Width(ButtonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Margin(0, 1, 0, 0)

	return Styles{
		Frame: lipgloss.NewStyle().
			Background(bg).
			Foreground(text).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Italic(true).
			Foreground(text).
			MarginBottom(1),

		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(text).
			Align(lipgloss.Right).
			Padding(0, 1).
			Width(4*(ButtonWidth+1) - 3).
			MarginBottom(1),

		Buttons: map[string]lipgloss.Style{
			output.RoleNumber:   button.Background(lipgloss.Color(p.NumberBG)).Foreground(lipgloss.Color(p.ButtonText)),
			output.RoleFunction: button.Background(lipgloss.Color(p.ButtonBG)).Foreground(lipgloss.Color(p.ButtonText)),
			output.RoleOperator: button.Background(lipgloss.Color(p.OperatorBG)).Foreground(lipgloss.Color("#ffffff")),
			output.RoleEquals:   button.Background(lipgloss.Color(p.EqualBG)).Foreground(lipgloss.Color("#ffffff")),
		},

		HistoryBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginTop(1),

		HistoryLine: lipgloss.NewStyle().Foreground(text),

		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(Subtle),

		Help: lipgloss.NewStyle().Foreground(Subtle).MarginTop(1),
	}
}

// Button returns the style of a keypad role, falling back to numbers.
func (s Styles) Button(role string) lipgloss.Style {
	if st, ok := s.Buttons[role]; ok {
		return st
	}
	return s.Buttons[output.RoleNumber]
}
