package components

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResultChart plots recent evaluation results, oldest on the left.
type ResultChart struct {
	Chart  linechart.Model
	Values []float64
	Width  int
	Height int
}

var _ Component = (*ResultChart)(nil)

func NewResultChart(width, height int) *ResultChart {
	return &ResultChart{
		Chart:  linechart.New(width, height, 0, 1, 0, 1),
		Width:  width,
		Height: height,
	}
}

func (c *ResultChart) Init() tea.Cmd {
	return nil
}

func (c *ResultChart) SetValues(values []float64) {
	c.Values = append(c.Values[:0], values...)
}

func (c *ResultChart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *ResultChart) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

// View returns an empty string until there are two points to connect.
func (c *ResultChart) View() string {
	if len(c.Values) < 2 {
		return ""
	}

	minY, maxY := c.Values[0], c.Values[0]
	for _, v := range c.Values[1:] {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}
	if minY == maxY {
		minY--
		maxY++
	}

	// width, height, minX, maxX, minY, maxY
	c.Chart = linechart.New(c.Width, c.Height, 0, float64(len(c.Values)-1), minY, maxY)
	for i := 0; i < len(c.Values)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.Values[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.Values[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Result Trend"),
		c.Chart.View(),
	)
}
