package observability

import (
	"context"
	"testing"
)

func TestInitMetricsDisabledReturnsNoopShutdown(t *testing.T) {
	shutdown, err := InitMetrics(context.Background(), false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}
