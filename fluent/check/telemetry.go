package check

import (
	"context"

	constant "github.com/LerianStudio/lib-fluent/fluent/constants"
	"github.com/LerianStudio/lib-fluent/fluent/log"
	"github.com/LerianStudio/lib-fluent/fluent/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// failureCounter wraps the check_failed_total counter.
type failureCounter struct {
	counter metric.Int64Counter
}

func newFailureCounter(meter metric.Meter) (*failureCounter, error) {
	counter, err := meter.Int64Counter(
		constant.MetricCheckFailedTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of failed checks"),
	)
	if err != nil {
		return nil, err
	}

	return &failureCounter{counter: counter}, nil
}

func (fc *failureCounter) record(ctx context.Context, predicate, noun string) {
	if fc == nil {
		return
	}

	fc.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String(constant.LabelPredicate, constant.SanitizeMetricLabel(predicate)),
		attribute.String(constant.LabelNoun, constant.SanitizeMetricLabel(noun)),
	))
}

// fail renders msg and reports the failure to the configured sinks. The text is
// built here, before the error exists, so later changes to the subject cannot
// alter it.
func (c Checker) fail(predicate string, negated bool, msg message.Message) *FailureError {
	text := msg.Build(c.formatter)

	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	c.logFailure(ctx, predicate, msg.Noun, negated, text)
	recordFailureToSpan(ctx, predicate, msg.Noun, negated, text)
	c.failures.record(ctx, predicate, msg.Noun)

	return &FailureError{Predicate: predicate, Message: text}
}

func (c Checker) logFailure(ctx context.Context, predicate, noun string, negated bool, text string) {
	if !c.logger.Enabled(log.LevelDebug) {
		return
	}

	c.logger.Log(ctx, log.LevelDebug, "check failed: "+log.Sanitize(text),
		log.String("predicate", predicate),
		log.String("noun", noun),
		log.Bool("negated", negated),
	)
}

func recordFailureToSpan(ctx context.Context, predicate, noun string, negated bool, text string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(constant.EventCheckFailed, trace.WithAttributes(
		attribute.String(constant.AttrCheckPredicate, predicate),
		attribute.String(constant.AttrCheckNoun, noun),
		attribute.Bool(constant.AttrCheckNegated, negated),
		attribute.String(constant.AttrCheckMessage, text),
	))
	span.SetStatus(codes.Error, "check failed: "+predicate)
}
