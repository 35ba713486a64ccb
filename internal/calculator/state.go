// Package calculator holds the calculator session state and the reducer that
// applies button presses to it.
package calculator

import (
	"fmt"
	"strings"
)

type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q (want Light or Dark)", s)
}

// HistoryEntry records one successful evaluation.
type HistoryEntry struct {
	Expression string
	Result     string
}

func (e HistoryEntry) String() string {
	return e.Expression + " = " + e.Result
}

// UIState is everything the presentation layer renders from.
type UIState struct {
	Expression  string
	History     []HistoryEntry
	ShowHistory bool
	Theme       Theme
}

// New returns the state of a fresh session.
func New() UIState {
	return UIState{
		History: []HistoryEntry{},
		Theme:   ThemeLight,
	}
}

// SetTheme switches the palette. Nothing else in the state changes.
func (s *UIState) SetTheme(t Theme) {
	s.Theme = t
}

func (s *UIState) ToggleTheme() {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
		return
	}
	s.Theme = ThemeDark
}
