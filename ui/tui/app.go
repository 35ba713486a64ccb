package tui

import (
	"time"

	"calcterm/internal/calculator"
	"calcterm/internal/config"
	"calcterm/internal/observability"
	"calcterm/internal/output"
	"calcterm/ui/tui/components"
	"calcterm/ui/tui/state"
	"calcterm/ui/tui/styles"
	"calcterm/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	state state.AppState
	keys  keyMap
	help  help.Model
	chart *components.ResultChart

	cursorRow, cursorCol int
	animRow, animCol     float64 // spring-animated cursor position
	velRow, velCol       float64
	spring               harmonica.Spring

	quitting bool
	width    int
	height   int
}

type AnimateMsg time.Time

func InitialModel(cfg config.Config) MainModel {
	// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	return MainModel{
		state:  state.New(cfg.Theme, cfg.HistoryLimit),
		keys:   keys,
		help:   help.New(),
		chart:  components.NewResultChart(30, 8),
		spring: spring,
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return animateCmd()
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Theme):
		m.state.Calc.ToggleTheme()
		observability.Logger.Debug("theme toggled", zap.Stringer("theme", m.state.Calc.Theme))
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Press):
		if b, ok := output.BuildScreen(m.state.Calc, m.state.HistoryLimit).ButtonAt(m.cursorRow, m.cursorCol); ok {
			m.press(b.Label)
		}
	case key.Matches(msg, m.keys.Evaluate):
		m.press(calculator.LabelEquals)
	case key.Matches(msg, m.keys.Backspace):
		m.press(calculator.LabelBackspace)
	case key.Matches(msg, m.keys.Clear):
		m.press(calculator.LabelClear)
	case key.Matches(msg, m.keys.History):
		m.press(calculator.LabelHistory)
	default:
		// Digits, "." and ASCII operators type straight into the expression
		if label, err := calculator.ParseLabel(msg.String()); err == nil {
			m.press(label)
		}
	}
	return m, nil
}

func (m *MainModel) press(label calculator.ButtonLabel) {
	m.state.Calc.HandleInput(label)
	m.state.LastPressed = label
	m.state.Presses++
}

// moveCursor keeps the cursor on the grid; rows may be shorter than the one above.
func (m *MainModel) moveCursor(dRow, dCol int) {
	pad := calculator.Keypad
	row := min(max(m.cursorRow+dRow, 0), len(pad)-1)
	col := min(max(m.cursorCol+dCol, 0), len(pad[row])-1)
	m.cursorRow, m.cursorCol = row, col
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.animRow, m.velRow = m.spring.Update(m.animRow, m.velRow, float64(m.cursorRow))
	m.animCol, m.velCol = m.spring.Update(m.animCol, m.velCol, float64(m.cursorCol))
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	newW := msg.Width/2 - 12
	if newW > 10 {
		m.chart.Resize(min(newW, 40), 8)
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for r, row := range calculator.Keypad {
		for c, label := range row {
			if zone.Get(views.ButtonZoneID(r, c)).InBounds(msg) {
				m.cursorRow, m.cursorCol = r, c
				m.press(label)
				return m, nil
			}
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	screen := output.BuildScreen(m.state.Calc, m.state.HistoryLimit)
	m.chart.SetValues(screen.History.Values)

	return views.RenderCalculator(m.state, views.ViewProps{
		Width:     m.width,
		Height:    m.height,
		Screen:    screen,
		Styles:    styles.For(screen.Palette),
		CursorRow: m.cursorRow,
		CursorCol: m.cursorCol,
		AnimRow:   m.animRow,
		AnimCol:   m.animCol,
		ChartView: m.chart.View(),
		HelpView:  m.help.View(m.keys),
	})
}

func Start(cfg config.Config) error {
	m := InitialModel(cfg)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
