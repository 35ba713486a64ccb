package output

import (
	"strconv"
	"testing"

	"calcterm/internal/calculator"

	. "github.com/onsi/gomega"
)

func sessionWithEvaluations(n int) calculator.UIState {
	s := calculator.New()
	for i := 1; i <= n; i++ {
		s.HandleInput(calculator.LabelClear)
		for _, r := range strconv.Itoa(i) {
			s.HandleInput(calculator.ButtonLabel(string(r)))
		}
		s.HandleInput(calculator.LabelMultiply)
		s.HandleInput("1")
		s.HandleInput(calculator.LabelEquals)
	}
	return s
}

func TestDisplayText(t *testing.T) {
	g := NewWithT(t)

	g.Expect(DisplayText("")).To(Equal("0"))
	g.Expect(DisplayText("12+3")).To(Equal("12+3"))
	g.Expect(DisplayText(calculator.ErrorText)).To(Equal("Error"))
}

func TestBuildHistoryPanel_Hidden(t *testing.T) {
	g := NewWithT(t)

	s := sessionWithEvaluations(3)
	p := BuildHistoryPanel(s, 10)

	g.Expect(p.Visible).To(BeFalse())
	g.Expect(p.Lines).To(BeEmpty())
}

func TestBuildHistoryPanel_Placeholder(t *testing.T) {
	g := NewWithT(t)

	s := calculator.New()
	s.HandleInput(calculator.LabelHistory)
	p := BuildHistoryPanel(s, 10)

	g.Expect(p.Visible).To(BeTrue())
	g.Expect(p.Empty).To(BeTrue())
	g.Expect(p.Lines).To(BeEmpty())
}

func TestBuildHistoryPanel_CapsMostRecentFirst(t *testing.T) {
	g := NewWithT(t)

	s := sessionWithEvaluations(12)
	s.HandleInput(calculator.LabelHistory)
	p := BuildHistoryPanel(s, calculator.DefaultHistoryLimit)

	g.Expect(p.Visible).To(BeTrue())
	g.Expect(p.Empty).To(BeFalse())
	g.Expect(p.Lines).To(HaveLen(10))
	g.Expect(p.Lines[0]).To(Equal("12*1 = 12"))
	g.Expect(p.Lines[9]).To(Equal("3*1 = 3"))
	g.Expect(p.Values).To(Equal([]float64{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}))
}

func TestBuildKeypad(t *testing.T) {
	g := NewWithT(t)

	rows := BuildKeypad()
	g.Expect(rows).To(HaveLen(5))
	g.Expect(rows[0][0].Role).To(Equal(RoleFunction))
	g.Expect(rows[0][3].Role).To(Equal(RoleOperator))
	g.Expect(rows[1][0].Role).To(Equal(RoleNumber))
	g.Expect(rows[4][2].Label).To(Equal(calculator.LabelEquals))
	g.Expect(rows[4][2].Role).To(Equal(RoleEquals))
	g.Expect(rows[4][1].Role).To(Equal(RoleNumber))
}

func TestBuildScreen(t *testing.T) {
	g := NewWithT(t)

	s := calculator.New()
	s.SetTheme(calculator.ThemeDark)
	view := BuildScreen(s, 10)

	g.Expect(view.Display).To(Equal("0"))
	g.Expect(view.Theme).To(Equal(calculator.ThemeDark))
	g.Expect(view.Palette).To(Equal(calculator.PaletteFor(calculator.ThemeDark)))
	g.Expect(view.History.Visible).To(BeFalse())

	b, ok := view.ButtonAt(3, 3)
	g.Expect(ok).To(BeTrue())
	g.Expect(b.Label).To(Equal(calculator.LabelAdd))

	_, ok = view.ButtonAt(4, 3)
	g.Expect(ok).To(BeFalse())
	_, ok = view.ButtonAt(-1, 0)
	g.Expect(ok).To(BeFalse())
}
