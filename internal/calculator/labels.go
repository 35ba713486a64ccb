package calculator

import (
	"fmt"
	"strings"
)

// ButtonLabel is the text printed on a keypad button.
type ButtonLabel string

const (
	LabelClear     ButtonLabel = "C"
	LabelBackspace ButtonLabel = "⌫"
	LabelHistory   ButtonLabel = "H"
	LabelEquals    ButtonLabel = "="
	LabelDot       ButtonLabel = "."

	LabelAdd      ButtonLabel = "➕"
	LabelSubtract ButtonLabel = "➖"
	LabelMultiply ButtonLabel = "✖️"
	LabelDivide   ButtonLabel = "➗"
)

// ErrorText is the expression shown after a failed evaluation.
const ErrorText = "Error"

// operatorGlyphs maps display glyphs to the operator the evaluator understands.
var operatorGlyphs = map[ButtonLabel]string{
	LabelAdd:      "+",
	LabelSubtract: "-",
	LabelMultiply: "*",
	"✖":           "*", // same glyph without the emoji presentation selector
	LabelDivide:   "/",
}

// Translate returns the expression text a label contributes. Labels without
// a glyph mapping (digits, ".") pass through unchanged.
func Translate(label ButtonLabel) string {
	if op, ok := operatorGlyphs[label]; ok {
		return op
	}
	return string(label)
}

// Keypad is the button grid, top row first.
var Keypad = [][]ButtonLabel{
	{LabelClear, LabelBackspace, LabelHistory, LabelDivide},
	{"7", "8", "9", LabelMultiply},
	{"4", "5", "6", LabelSubtract},
	{"1", "2", "3", LabelAdd},
	{"0", LabelDot, LabelEquals},
}

// LabelKind groups labels by the rule that handles them.
type LabelKind string

const (
	KindDigit     LabelKind = "digit"
	KindDot       LabelKind = "dot"
	KindOperator  LabelKind = "operator"
	KindClear     LabelKind = "clear"
	KindBackspace LabelKind = "backspace"
	KindHistory   LabelKind = "history"
	KindEquals    LabelKind = "equals"
	KindOther     LabelKind = "other"
)

// KindOf classifies a label.
func KindOf(label ButtonLabel) LabelKind {
	switch label {
	case LabelClear:
		return KindClear
	case LabelBackspace:
		return KindBackspace
	case LabelHistory:
		return KindHistory
	case LabelEquals:
		return KindEquals
	case LabelDot:
		return KindDot
	}
	if _, ok := operatorGlyphs[label]; ok {
		return KindOperator
	}
	switch label {
	case "+", "-", "*", "/":
		return KindOperator
	}
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return KindDigit
	}
	return KindOther
}

var asciiOperators = map[string]ButtonLabel{
	"+": LabelAdd,
	"-": LabelSubtract,
	"*": LabelMultiply,
	"x": LabelMultiply,
	"/": LabelDivide,
}

// ParseLabel validates text from outside the keypad (keyboard, MCP) against
// the closed label set. ASCII operators are mapped to their glyph label.
func ParseLabel(s string) (ButtonLabel, error) {
	s = strings.TrimSpace(s)
	if l, ok := asciiOperators[s]; ok {
		return l, nil
	}
	l := ButtonLabel(s)
	if KindOf(l) == KindOther {
		return "", fmt.Errorf("unknown button label %q", s)
	}
	return l, nil
}
