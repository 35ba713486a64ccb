package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	"calcterm/internal/calculator"
	"calcterm/internal/config"
	"calcterm/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *MainModel, msgs ...tea.Msg) *MainModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(*MainModel)
	}
	return m
}

func TestTypedExpressionEvaluates(t *testing.T) {
	model := InitialModel(config.Default())

	m := send(t, &model,
		runes("2"), runes("+"), runes("3"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if m.state.Calc.Expression != "5" {
		t.Errorf("Expected expression %q, got %q", "5", m.state.Calc.Expression)
	}
	if len(m.state.Calc.History) != 1 {
		t.Errorf("Expected 1 history entry, got %d", len(m.state.Calc.History))
	}
	if m.state.Presses != 4 {
		t.Errorf("Expected 4 presses, got %d", m.state.Presses)
	}
}

func TestEditingKeys(t *testing.T) {
	model := InitialModel(config.Default())

	m := send(t, &model, runes("1"), runes("2"), runes("3"), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.state.Calc.Expression != "12" {
		t.Errorf("Expected %q after backspace, got %q", "12", m.state.Calc.Expression)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state.Calc.Expression != "" {
		t.Errorf("Expected empty expression after esc, got %q", m.state.Calc.Expression)
	}

	m = send(t, m, runes("9"), runes("x"), runes("2"), runes("="))
	if m.state.Calc.Expression != "18" {
		t.Errorf("Expected %q, got %q", "18", m.state.Calc.Expression)
	}
}

func TestHistoryAndThemeKeys(t *testing.T) {
	model := InitialModel(config.Default())

	m := send(t, &model, runes("h"))
	if !m.state.Calc.ShowHistory {
		t.Error("Expected history panel shown after h")
	}
	if !strings.Contains(m.View(), "No history yet.") {
		t.Error("Expected placeholder in rendered history panel")
	}

	m = send(t, m, runes("t"))
	if m.state.Calc.Theme != calculator.ThemeDark {
		t.Errorf("Expected Dark theme after t, got %v", m.state.Calc.Theme)
	}
	if !m.state.Calc.ShowHistory {
		t.Error("Expected theme switch to leave the history panel alone")
	}
	if !strings.Contains(m.View(), "Dark") {
		t.Error("Expected theme name in the title")
	}
}

func TestInitialThemeFromConfig(t *testing.T) {
	model := InitialModel(config.Default().WithTheme(calculator.ThemeDark))

	if model.state.Calc.Theme != calculator.ThemeDark {
		t.Errorf("Expected Dark theme from config, got %v", model.state.Calc.Theme)
	}
}

func TestCursorNavigationAndPress(t *testing.T) {
	model := InitialModel(config.Default())

	// Row 1 is 7 8 9 ✖️
	m := send(t, &model, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursorRow != 1 || m.cursorCol != 1 {
		t.Fatalf("Expected cursor at (1,1), got (%d,%d)", m.cursorRow, m.cursorCol)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.state.Calc.Expression != "8" {
		t.Errorf("Expected %q after pressing selected key, got %q", "8", m.state.Calc.Expression)
	}
	if m.state.LastPressed != "8" {
		t.Errorf("Expected last pressed %q, got %q", "8", m.state.LastPressed)
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	model := InitialModel(config.Default())

	m := send(t, &model, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Errorf("Expected cursor clamped at (0,0), got (%d,%d)", m.cursorRow, m.cursorCol)
	}

	// The bottom row has three buttons; the column clamps to its last one.
	for range 5 {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursorRow != 4 || m.cursorCol != 2 {
		t.Errorf("Expected cursor clamped at (4,2), got (%d,%d)", m.cursorRow, m.cursorCol)
	}
}

func TestCursorAnimationLogic(t *testing.T) {
	model := InitialModel(config.Default())
	model.cursorRow = 1

	if model.animRow != 0 {
		t.Errorf("Expected initial animRow 0, got %f", model.animRow)
	}

	animateMsg := AnimateMsg(time.Now())
	m := send(t, &model, animateMsg)

	if m.animRow <= 0 {
		t.Errorf("Expected animRow to increase after animation frame, got %f", m.animRow)
	}
	if m.animRow >= 1.0 {
		t.Errorf("Expected animRow to not reach target immediately, got %f", m.animRow)
	}

	prev := m.animRow
	m = send(t, m, animateMsg)
	if m.animRow <= prev {
		t.Errorf("Expected animRow to keep increasing, got %f after %f", m.animRow, prev)
	}
}

func TestQuit(t *testing.T) {
	model := InitialModel(config.Default())

	updated, cmd := model.Update(runes("q"))
	m := updated.(*MainModel)

	if !m.quitting {
		t.Error("Expected quitting after q")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Expected goodbye view, got %q", m.View())
	}
}

// renderZone draws the model and waits for the button zone to be registered.
func renderZone(t *testing.T, m *MainModel, row, col int) *zone.ZoneInfo {
	t.Helper()
	id := views.ButtonZoneID(row, col)
	zone.Clear(id)
	m.View()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if z := zone.Get(id); !z.IsZero() {
			return z
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected zone %s to be registered after rendering", id)
	return nil
}

func TestMouseClickPressesOnce(t *testing.T) {
	model := InitialModel(config.Default())
	m := &model

	// Row 1, column 0 is "7"
	z := renderZone(t, m, 1, 0)
	at := func(action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
		return tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: action, Button: button}
	}

	m = send(t, m,
		at(tea.MouseActionPress, tea.MouseButtonLeft),
		at(tea.MouseActionMotion, tea.MouseButtonNone),
		at(tea.MouseActionRelease, tea.MouseButtonRight),
	)
	if m.state.Calc.Expression != "" || m.state.Presses != 0 {
		t.Fatalf("Expected press, motion and right-button events to be ignored, got %q after %d presses",
			m.state.Calc.Expression, m.state.Presses)
	}

	m = send(t, m, at(tea.MouseActionRelease, tea.MouseButtonLeft))
	if m.state.Calc.Expression != "7" {
		t.Errorf("Expected expression %q after one click, got %q", "7", m.state.Calc.Expression)
	}
	if m.state.Presses != 1 {
		t.Errorf("Expected exactly 1 press, got %d", m.state.Presses)
	}
	if m.cursorRow != 1 || m.cursorCol != 0 {
		t.Errorf("Expected cursor to follow the click to (1,0), got (%d,%d)", m.cursorRow, m.cursorCol)
	}
}

func TestMouseReleaseOutsideKeypadIsIgnored(t *testing.T) {
	model := InitialModel(config.Default())
	m := &model
	renderZone(t, m, 0, 0)

	m = send(t, m, tea.MouseMsg{X: -1, Y: -1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.state.Presses != 0 {
		t.Errorf("Expected no press for a click outside the keypad, got %d", m.state.Presses)
	}
}

func TestStatusLine(t *testing.T) {
	model := InitialModel(config.Default())

	if !strings.Contains(model.View(), "ready") {
		t.Error("Expected idle status before any press")
	}

	m := send(t, &model, runes("4"), runes("2"))
	if view := m.View(); !strings.Contains(view, "last: 2 · presses: 2") {
		t.Errorf("Expected status line with last label and press count, got:\n%s", view)
	}
}
