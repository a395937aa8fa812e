package eval

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("crossval.eval")

// startRunSpan creates the span covering a whole run.
func startRunSpan(ctx context.Context, strategy, target string, rows int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Evaluator.Run",
		trace.WithAttributes(
			attribute.String("crossval.strategy", strategy),
			attribute.String("crossval.target", target),
			attribute.Int("crossval.rows", rows),
		),
	)
}

// startFoldSpan creates a child span for one fold.
func startFoldSpan(ctx context.Context, fold, trainRows, testRows int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Evaluator.fold",
		trace.WithAttributes(
			attribute.Int("crossval.fold", fold),
			attribute.Int("crossval.train_rows", trainRows),
			attribute.Int("crossval.test_rows", testRows),
		),
	)
}

// endSpan records err, if any, and ends span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
