package state

import (
	"calcterm/internal/calculator"
)

// AppState is the session owned by the TUI controller. Views read it; only
// the controller mutates it, through Calc.HandleInput.
type AppState struct {
	Calc         calculator.UIState
	HistoryLimit int
	LastPressed  calculator.ButtonLabel
	Presses      int
}

// New starts a session with the given theme and history cap.
func New(theme calculator.Theme, historyLimit int) AppState {
	calc := calculator.New()
	calc.SetTheme(theme)
	return AppState{
		Calc:         calc,
		HistoryLimit: historyLimit,
	}
}
