package calculator

// DefaultHistoryLimit is how many entries the history panel shows.
const DefaultHistoryLimit = 10

// Recent returns up to limit history entries, most recent first.
func (s UIState) Recent(limit int) []HistoryEntry {
	n := len(s.History)
	if limit < n {
		n = limit
	}
	if n <= 0 {
		return nil
	}

	out := make([]HistoryEntry, 0, n)
	for i := len(s.History) - 1; len(out) < n; i-- {
		out = append(out, s.History[i])
	}
	return out
}
