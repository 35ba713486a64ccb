package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxDepth = 256

// ErrorKind classifies why an expression could not be evaluated.
type ErrorKind string

const (
	KindEmpty          ErrorKind = "empty"
	KindSyntax         ErrorKind = "syntax"
	KindDivisionByZero ErrorKind = "division_by_zero"
	KindOverflow       ErrorKind = "overflow"
)

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrEmpty          = &EvaluationError{Kind: KindEmpty}
	ErrSyntax         = &EvaluationError{Kind: KindSyntax}
	ErrDivisionByZero = &EvaluationError{Kind: KindDivisionByZero}
	ErrOverflow       = &EvaluationError{Kind: KindOverflow}
)

// EvaluationError is returned for every expression that does not reduce to a
// finite number.
type EvaluationError struct {
	Kind ErrorKind
	Pos  int // byte offset into the expression
	Msg  string
}

func (e *EvaluationError) Error() string {
	if e.Msg == "" {
		return "evaluation error: " + string(e.Kind)
	}
	return fmt.Sprintf("evaluation error: %s at %d: %s", e.Kind, e.Pos, e.Msg)
}

func (e *EvaluationError) Is(target error) bool {
	t, ok := target.(*EvaluationError)
	return ok && t.Kind == e.Kind
}

// Evaluate computes an infix arithmetic expression over + - * / with the
// usual precedence and left associativity. Parentheses and unary signs are
// accepted. Division is floating point; dividing by zero is an error.
func Evaluate(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, &EvaluationError{Kind: KindEmpty, Msg: "nothing to evaluate"}
	}

	p := &parser{src: expr}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, p.unexpected()
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &EvaluationError{Kind: KindOverflow, Pos: 0, Msg: "result is not a finite number"}
	}
	return v, nil
}

type parser struct {
	src   string
	pos   int
	depth int
}

func (p *parser) errorf(kind ErrorKind, format string, args ...any) *EvaluationError {
	return &EvaluationError{Kind: kind, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) unexpected() *EvaluationError {
	if p.pos >= len(p.src) {
		return p.errorf(KindSyntax, "unexpected end of expression")
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return p.errorf(KindSyntax, "unexpected %q", r)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the next non-space byte, or 0 at the end of input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// term := unary (('*'|'/') unary)*
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		opPos := p.pos
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
			continue
		}
		if right == 0 {
			return 0, &EvaluationError{Kind: KindDivisionByZero, Pos: opPos, Msg: "division by zero"}
		}
		left /= right
	}
}

// unary := ('+'|'-') unary | primary
func (p *parser) parseUnary() (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return 0, p.errorf(KindSyntax, "expression nested too deeply")
	}

	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePrimary()
}

// primary := number | '(' expr ')'
func (p *parser) parsePrimary() (float64, error) {
	c := p.peek()
	if c == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			if p.pos >= len(p.src) {
				return 0, p.errorf(KindSyntax, "missing closing parenthesis")
			}
			return 0, p.unexpected()
		}
		p.pos++
		return v, nil
	}
	if c == '.' || isDigit(c) {
		return p.parseNumber()
	}
	return 0, p.unexpected()
}

// number := digits ['.' digits] | '.' digits | digits '.'
func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	digits := 0
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
		digits++
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
			digits++
		}
	}
	if digits == 0 {
		p.pos = start
		return 0, p.errorf(KindSyntax, "malformed number")
	}
	p.skipExponent()

	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		// Only range errors reach here; the literal itself was validated above.
		return 0, &EvaluationError{Kind: KindOverflow, Pos: start, Msg: "number out of range"}
	}
	return v, nil
}

// skipExponent consumes an exponent suffix such as "e+21" so that results
// formatted in exponent notation can seed the next expression.
func (p *parser) skipExponent() {
	i := p.pos
	if i >= len(p.src) || (p.src[i] != 'e' && p.src[i] != 'E') {
		return
	}
	i++
	if i < len(p.src) && (p.src[i] == '+' || p.src[i] == '-') {
		i++
	}
	n := 0
	for i < len(p.src) && isDigit(p.src[i]) {
		i++
		n++
	}
	if n > 0 {
		p.pos = i
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
