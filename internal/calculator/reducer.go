package calculator

import (
	"context"
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	"calcterm/internal/engine"
	"calcterm/internal/observability"

	"go.uber.org/zap"
)

// outcome describes what a press did, for logging and metrics only.
type outcome struct {
	evaluated bool
	err       error
	elapsed   time.Duration
	value     float64
}

// Reduce returns the state that results from pressing label. The input state
// is not modified; its History slice is never appended to in place.
func Reduce(s UIState, label ButtonLabel) UIState {
	next, _ := step(s, label)
	return next
}

// HandleInput applies a press to the session in place.
func (s *UIState) HandleInput(label ButtonLabel) {
	prev := s.Expression
	next, out := step(*s, label)
	*s = next
	record(label, prev, next.Expression, out)
}

func step(s UIState, label ButtonLabel) (UIState, outcome) {
	switch label {
	case LabelClear:
		s.Expression = ""
	case LabelBackspace:
		s.Expression = dropLast(s.Expression)
	case LabelHistory:
		s.ShowHistory = !s.ShowHistory
	case LabelEquals:
		return evaluate(s)
	default:
		text := Translate(label)
		if s.Expression == ErrorText {
			s.Expression = text
		} else {
			s.Expression += text
		}
	}
	return s, outcome{}
}

func dropLast(expr string) string {
	if expr == "" {
		return expr
	}
	_, size := utf8.DecodeLastRuneInString(expr)
	return expr[:len(expr)-size]
}

func evaluate(s UIState) (next UIState, out outcome) {
	out.evaluated = true
	start := time.Now()

	defer func() {
		out.elapsed = time.Since(start)
		if r := recover(); r != nil {
			out.err = fmt.Errorf("evaluator panic: %v", r)
			s.Expression = ErrorText
			next = s
		}
	}()

	v, err := engine.Evaluate(s.Expression)
	if err != nil {
		out.err = err
		s.Expression = ErrorText
		return s, out
	}

	result := engine.FormatResult(v)
	s.History = append(slices.Clip(s.History), HistoryEntry{Expression: s.Expression, Result: result})
	s.Expression = result
	out.value = v
	return s, out
}

func record(label ButtonLabel, prev, next string, out outcome) {
	ctx := context.Background()
	kind := KindOf(label)
	recordPress(ctx, kind)

	if !out.evaluated {
		observability.Logger.Debug("button pressed",
			zap.String("label", string(label)),
			zap.String("kind", string(kind)),
			zap.String("expression", next),
		)
		return
	}

	recordEvaluation(ctx, out)
	if out.err != nil {
		observability.Logger.Debug("evaluation failed",
			zap.String("expression", prev),
			zap.String("kind", errorKind(out.err)),
			zap.Error(out.err),
		)
		return
	}
	observability.Logger.Info("evaluation completed",
		zap.String("expression", prev),
		zap.String("result", next),
		zap.Float64("duration_ms", float64(out.elapsed.Microseconds())/1000.0),
	)
}
