package calculator

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct {
		label    ButtonLabel
		expected string
	}{
		{LabelAdd, "+"},
		{LabelSubtract, "-"},
		{LabelMultiply, "*"},
		{"✖", "*"},
		{LabelDivide, "/"},
		{"7", "7"},
		{LabelDot, "."},
	}

	for _, tt := range tests {
		if got := Translate(tt.label); got != tt.expected {
			t.Errorf("Translate(%q) = %q; want %q", tt.label, got, tt.expected)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		label    ButtonLabel
		expected LabelKind
	}{
		{"0", KindDigit},
		{"9", KindDigit},
		{LabelDot, KindDot},
		{LabelAdd, KindOperator},
		{"/", KindOperator},
		{LabelClear, KindClear},
		{LabelBackspace, KindBackspace},
		{LabelHistory, KindHistory},
		{LabelEquals, KindEquals},
		{"42", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		if got := KindOf(tt.label); got != tt.expected {
			t.Errorf("KindOf(%q) = %q; want %q", tt.label, got, tt.expected)
		}
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected ButtonLabel
		wantErr  bool
	}{
		{"5", "5", false},
		{" 5 ", "5", false},
		{"+", LabelAdd, false},
		{"x", LabelMultiply, false},
		{"/", LabelDivide, false},
		{"➗", LabelDivide, false},
		{"=", LabelEquals, false},
		{"C", LabelClear, false},
		{"⌫", LabelBackspace, false},
		{"sqrt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLabel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseLabel(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestKeypadCoversEveryKind(t *testing.T) {
	seen := map[LabelKind]int{}
	for _, row := range Keypad {
		for _, l := range row {
			seen[KindOf(l)]++
		}
	}

	if seen[KindDigit] != 10 {
		t.Errorf("Expected 10 digit buttons, got %d", seen[KindDigit])
	}
	if seen[KindOperator] != 4 {
		t.Errorf("Expected 4 operator buttons, got %d", seen[KindOperator])
	}
	if seen[KindOther] != 0 {
		t.Errorf("Expected no unknown labels on the keypad, got %d", seen[KindOther])
	}
}
