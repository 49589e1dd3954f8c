package transform

import (
	"context"
	"time"

	"github.com/kbukum/arrkit/logger"
	"github.com/kbukum/arrkit/observability"
)

// WithTracing wraps a step with OpenTelemetry span creation.
// Each application creates a span named "{prefix}.{stepName}".
func WithTracing[T any](step Step[T], prefix string) Step[T] {
	return &tracingStep[T]{inner: step, prefix: prefix}
}

type tracingStep[T any] struct {
	inner  Step[T]
	prefix string
}

func (s *tracingStep[T]) Name() string { return s.inner.Name() }

func (s *tracingStep[T]) Apply(ctx context.Context, items []T) []T {
	spanName := s.prefix + "." + s.inner.Name()
	ctx, span := observability.StartSpan(ctx, spanName)
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrStepName, s.inner.Name())
	observability.SetSpanAttribute(ctx, observability.AttrInputSize, len(items))

	out := s.inner.Apply(ctx, items)
	observability.SetSpanAttribute(ctx, observability.AttrOutputSize, len(out))

	return out
}

// WithMetrics wraps a step with metric recording.
// Records step count and duration.
func WithMetrics[T any](step Step[T], metrics *observability.Metrics) Step[T] {
	return &metricsStep[T]{inner: step, metrics: metrics}
}

type metricsStep[T any] struct {
	inner   Step[T]
	metrics *observability.Metrics
}

func (s *metricsStep[T]) Name() string { return s.inner.Name() }

func (s *metricsStep[T]) Apply(ctx context.Context, items []T) []T {
	start := time.Now()
	out := s.inner.Apply(ctx, items)
	s.metrics.RecordStep(ctx, s.inner.Name(), "ok", time.Since(start))
	return out
}

// WithLogging wraps a step with execution logging.
// Logs: step name, input/output sizes, and duration.
func WithLogging[T any](step Step[T], log *logger.Logger) Step[T] {
	return &loggingStep[T]{inner: step, log: log}
}

type loggingStep[T any] struct {
	inner Step[T]
	log   *logger.Logger
}

func (s *loggingStep[T]) Name() string { return s.inner.Name() }

func (s *loggingStep[T]) Apply(ctx context.Context, items []T) []T {
	start := time.Now()
	out := s.inner.Apply(ctx, items)
	s.log.Debug("step applied", logger.Fields(
		logger.FieldStep, s.inner.Name(),
		"in", len(items),
		"out", len(out),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return out
}
