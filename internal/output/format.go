package output

import (
	"calcterm/internal/calculator"
)

// HistoryPlaceholder is shown in the history panel before any evaluation.
const HistoryPlaceholder = "No history yet."

// Button roles select the palette entry a key is drawn with.
const (
	RoleNumber   = "number"
	RoleFunction = "function"
	RoleOperator = "operator"
	RoleEquals   = "equals"
)

// UI/view-model types (no printing here)
type Button struct {
	Label calculator.ButtonLabel
	Role  string
	Row   int
	Col   int
}

type HistoryPanel struct {
	Visible bool
	Empty   bool
	Lines   []string // "<expression> = <result>", most recent first
	Values  []float64
}

type ScreenView struct {
	Display string
	Theme   calculator.Theme
	Palette calculator.Palette
	Keypad  [][]Button
	History HistoryPanel
}

// DisplayText is what the display box shows for expr.
func DisplayText(expr string) string {
	if expr == "" {
		return "0"
	}
	return expr
}

// RoleFor maps a label to its keypad role.
func RoleFor(label calculator.ButtonLabel) string {
	switch calculator.KindOf(label) {
	case calculator.KindOperator:
		return RoleOperator
	case calculator.KindEquals:
		return RoleEquals
	case calculator.KindClear, calculator.KindBackspace, calculator.KindHistory:
		return RoleFunction
	default:
		return RoleNumber
	}
}

// BuildKeypad lays out calculator.Keypad with roles and grid positions.
func BuildKeypad() [][]Button {
	rows := make([][]Button, len(calculator.Keypad))
	for r, labels := range calculator.Keypad {
		rows[r] = make([]Button, len(labels))
		for c, l := range labels {
			rows[r][c] = Button{Label: l, Role: RoleFor(l), Row: r, Col: c}
		}
	}
	return rows
}

// BuildHistoryPanel converts session history into panel lines.
func BuildHistoryPanel(s calculator.UIState, limit int) HistoryPanel {
	if !s.ShowHistory {
		return HistoryPanel{}
	}

	recent := s.Recent(limit)
	if len(recent) == 0 {
		return HistoryPanel{Visible: true, Empty: true}
	}

	p := HistoryPanel{Visible: true}
	for _, e := range recent {
		p.Lines = append(p.Lines, e.String())
	}
	p.Values = resultValues(recent)
	return p
}

// BuildScreen converts session state into everything a renderer needs.
func BuildScreen(s calculator.UIState, historyLimit int) ScreenView {
	return ScreenView{
		Display: DisplayText(s.Expression),
		Theme:   s.Theme,
		Palette: s.Palette(),
		Keypad:  BuildKeypad(),
		History: BuildHistoryPanel(s, historyLimit),
	}
}

// ButtonAt returns the button at a grid position.
func (v ScreenView) ButtonAt(row, col int) (Button, bool) {
	if row < 0 || row >= len(v.Keypad) {
		return Button{}, false
	}
	if col < 0 || col >= len(v.Keypad[row]) {
		return Button{}, false
	}
	return v.Keypad[row][col], true
}
