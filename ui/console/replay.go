package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"calcterm/internal/calculator"
)

// Replay feeds button labels from r into s, one label per line. Blank lines
// and lines starting with '#' are skipped. Unknown labels stop the replay.
// It returns the number of presses applied.
func Replay(r io.Reader, s *calculator.UIState) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		label, err := calculator.ParseLabel(text)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		s.HandleInput(label)
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("read labels: %w", err)
	}
	return n, nil
}
