package calculator

import "testing"

func TestPaletteFor(t *testing.T) {
	light := PaletteFor(ThemeLight)
	dark := PaletteFor(ThemeDark)

	if light.Background != "#ffffff" || dark.Background != "#000000" {
		t.Errorf("unexpected backgrounds: light %s, dark %s", light.Background, dark.Background)
	}
	if light.OperatorBG != dark.OperatorBG {
		t.Errorf("operator accent differs between themes: %s vs %s", light.OperatorBG, dark.OperatorBG)
	}
	if light.EqualBG != dark.EqualBG {
		t.Errorf("equals accent differs between themes: %s vs %s", light.EqualBG, dark.EqualBG)
	}
	if got := PaletteFor(Theme(99)); got != light {
		t.Errorf("Expected unknown theme to fall back to Light, got %+v", got)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected Theme
		wantErr  bool
	}{
		{"Light", ThemeLight, false},
		{"dark", ThemeDark, false},
		{" DARK ", ThemeDark, false},
		{"solarized", ThemeLight, true},
	}

	for _, tt := range tests {
		got, err := ParseTheme(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseTheme(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}

	if ThemeDark.String() != "Dark" || ThemeLight.String() != "Light" {
		t.Errorf("unexpected theme names %q/%q", ThemeLight, ThemeDark)
	}
}
