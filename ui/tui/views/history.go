package views

import (
	"calcterm/internal/output"
	"calcterm/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

type HistoryView struct{}

func (v HistoryView) Render(s state.AppState, props ViewProps) string {
	panel := props.Screen.History
	if !panel.Visible {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("🕓 History")

	var body []string
	if panel.Empty {
		body = append(body, props.Styles.Placeholder.Render(output.HistoryPlaceholder))
	} else {
		for _, line := range panel.Lines {
			body = append(body, props.Styles.HistoryLine.Render(line))
		}
	}

	parts := []string{title, lipgloss.JoinVertical(lipgloss.Left, body...)}
	if props.ChartView != "" {
		parts = append(parts, "", props.ChartView)
	}
	return props.Styles.HistoryBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
