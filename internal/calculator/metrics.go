package calculator

import (
	"context"
	"errors"
	"fmt"

	"calcterm/internal/engine"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instruments stays nil until InitMetrics runs; recording is then a no-op.
var (
	instruments *metricSet
)

type metricSet struct {
	presses     metric.Int64Counter
	evaluations metric.Int64Counter
	errors      metric.Int64Counter
	duration    metric.Float64Histogram
	lastResult  metric.Float64Gauge
}

// InitMetrics registers the calculator's OTel instruments on the global meter
// provider. Call it once at startup, after observability.InitMetrics.
func InitMetrics() error {
	meter := otel.Meter("calculator")
	m := &metricSet{}

	var err error

	m.presses, err = meter.Int64Counter("calculator.presses.total",
		metric.WithDescription("Total number of button presses handled"),
		metric.WithUnit("{press}"),
	)
	if err != nil {
		return fmt.Errorf("creating press counter: %w", err)
	}

	m.evaluations, err = meter.Int64Counter("calculator.evaluations.total",
		metric.WithDescription("Total number of evaluations attempted"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluation counter: %w", err)
	}

	m.errors, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of evaluations that ended in Error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	m.duration, err = meter.Float64Histogram("calculator.evaluation.duration",
		metric.WithDescription("Duration of expression evaluation in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.05, 0.1, 0.5, 1, 5),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	m.lastResult, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last successful evaluation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	instruments = m
	return nil
}

func recordPress(ctx context.Context, kind LabelKind) {
	if instruments == nil {
		return
	}
	instruments.presses.Add(ctx, 1, metric.WithAttributes(attribute.String("label_kind", string(kind))))
}

func recordEvaluation(ctx context.Context, out outcome) {
	if instruments == nil {
		return
	}
	instruments.evaluations.Add(ctx, 1)
	instruments.duration.Record(ctx, float64(out.elapsed.Microseconds())/1000.0)
	if out.err != nil {
		instruments.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", errorKind(out.err))))
		return
	}
	instruments.lastResult.Record(ctx, out.value)
}

func errorKind(err error) string {
	var evalErr *engine.EvaluationError
	if errors.As(err, &evalErr) {
		return string(evalErr.Kind)
	}
	return "internal"
}
