package views

import (
	"calcterm/ui/tui/state"
)

type DisplayView struct{}

func (v DisplayView) Render(s state.AppState, props ViewProps) string {
	return props.Styles.Display.Render(props.Screen.Display)
}
