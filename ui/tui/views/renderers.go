package views

import (
	"fmt"

	"calcterm/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// RenderCalculator composes the whole screen: title, display, keypad,
// optional history panel, the status line and the help footer.
func RenderCalculator(s state.AppState, props ViewProps) string {
	title := props.Styles.Title.Render(fmt.Sprintf("calcterm · %s", props.Screen.Theme))

	calc := lipgloss.JoinVertical(lipgloss.Left,
		title,
		DisplayView{}.Render(s, props),
		KeypadView{}.Render(s, props),
	)

	if history := (HistoryView{}).Render(s, props); history != "" {
		calc = lipgloss.JoinHorizontal(lipgloss.Top, calc, lipgloss.NewStyle().PaddingLeft(2).Render(history))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		calc,
		StatusView{}.Render(s, props),
		props.Styles.Help.Render(props.HelpView),
	)

	framed := props.Styles.Frame.Render(body)
	if props.Width > 0 && props.Height > 0 {
		framed = lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, framed)
	}
	return zone.Scan(framed)
}
