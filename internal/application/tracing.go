package application

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"retreat/internal/domain"
)

var tracer = otel.Tracer("retreat/internal/application")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span. Domain rejections are tagged with their code
// but do not mark the span as failed.
func endSpan(span trace.Span, err error) {
	if err != nil {
		if code := domain.Code(err); code != "" {
			span.SetAttributes(attribute.String("retreat.error_code", code))
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}
