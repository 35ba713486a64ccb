package views

import (
	"fmt"
	"math"

	"calcterm/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ButtonZoneID names the mouse zone of the keypad button at row, col.
func ButtonZoneID(row, col int) string {
	return fmt.Sprintf("key_%d_%d", row, col)
}

type KeypadView struct{}

func (v KeypadView) Render(s state.AppState, props ViewProps) string {
	var rows []string
	for r, buttons := range props.Screen.Keypad {
		var cells []string
		for c, b := range buttons {
			// Spring-animated cursor: buttons near the animated position light up
			dist := math.Hypot(float64(r)-props.AnimRow, float64(c)-props.AnimCol)
			strength := 0.0
			if dist < 1.0 {
				strength = 1.0 - dist
			}

			style := props.Styles.Button(b.Role)
			if strength > 0.5 {
				style = style.Reverse(true)
			}
			if r == props.CursorRow && c == props.CursorCol {
				style = style.Underline(true).UnderlineSpaces(false)
			}

			cells = append(cells, zone.Mark(ButtonZoneID(r, c), style.Render(string(b.Label))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
