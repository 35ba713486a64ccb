package console

import (
	"fmt"
	"io"
	"strings"

	"calcterm/internal/calculator"
	"calcterm/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

const displayWidth = 24

// Print renders the screen view to the writer in a compact plain-text form.
func Print(w io.Writer, view output.ScreenView) {
	fmt.Fprintf(w, "%s%s %s%s (%s)\n", colorCyan, "■", "CALCTERM", colorReset, view.Theme)

	// Display box, right aligned like the on-screen display
	display := view.Display
	if len([]rune(display)) > displayWidth {
		display = "…" + string([]rune(display)[len([]rune(display))-displayWidth+1:])
	}
	border := strings.Repeat("─", displayWidth+2)
	fmt.Fprintf(w, "┌%s┐\n", border)
	fmt.Fprintf(w, "│ %s%*s%s │\n", colorFor(view.Display), displayWidth, display, colorReset)
	fmt.Fprintf(w, "└%s┘\n", border)

	if !view.History.Visible {
		return
	}

	fmt.Fprintf(w, "%s─ History%s\n", colorCyan, colorReset)
	if view.History.Empty {
		fmt.Fprintf(w, "  %s\n", output.HistoryPlaceholder)
		return
	}
	for _, line := range view.History.Lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func colorFor(display string) string {
	switch {
	case display == calculator.ErrorText:
		return colorRed
	case display == "0":
		return colorYellow
	default:
		return colorGreen
	}
}
