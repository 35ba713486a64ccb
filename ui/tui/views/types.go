package views

import (
	"calcterm/internal/output"
	"calcterm/ui/tui/state"
	"calcterm/ui/tui/styles"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	Screen output.ScreenView
	Styles styles.Styles

	// Component States
	CursorRow, CursorCol int
	AnimRow, AnimCol     float64
	ChartView            string
	HelpView             string
}

// View defines the contract for any renderable region of the calculator.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

var (
	_ View = DisplayView{}
	_ View = KeypadView{}
	_ View = HistoryView{}
	_ View = StatusView{}
)
