package views

import (
	"fmt"

	"calcterm/ui/tui/state"
)

type StatusView struct{}

// Render shows the last pressed label and the press count of the session.
func (v StatusView) Render(s state.AppState, props ViewProps) string {
	if s.Presses == 0 {
		return props.Styles.Help.Render("ready")
	}
	return props.Styles.Help.Render(fmt.Sprintf("last: %s · presses: %d", s.LastPressed, s.Presses))
}
