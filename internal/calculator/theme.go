package calculator

// Palette is the fixed set of hex colors a theme selects. Operator and
// equals accents are shared by both themes.
type Palette struct {
	Background string
	Text       string
	Border     string
	ButtonBG   string
	ButtonText string
	NumberBG   string
	OperatorBG string
	EqualBG    string
}

var palettes = map[Theme]Palette{
	ThemeLight: {
		Background: "#ffffff",
		Text:       "#000000",
		Border:     "#000000",
		ButtonBG:   "#f0f0f0",
		ButtonText: "#000000",
		NumberBG:   "#e0e0e0",
		OperatorBG: "#ff9500", // orange
		EqualBG:    "#34c759", // green
	},
	ThemeDark: {
		Background: "#000000",
		Text:       "#ffffff",
		Border:     "#ffffff",
		ButtonBG:   "#4d4d4d",
		ButtonText: "#ffffff",
		NumberBG:   "#505050",
		OperatorBG: "#ff9500",
		EqualBG:    "#34c759",
	},
}

// PaletteFor returns the colors of t. Unknown themes fall back to Light.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeLight]
}

// Palette returns the colors of the session's current theme.
func (s UIState) Palette() Palette {
	return PaletteFor(s.Theme)
}
