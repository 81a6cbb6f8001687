package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartParse starts a span covering one parse of a filter expression. The
// expression itself is not recorded since filters routinely contain user data.
func StartParse(ctx context.Context, inputLength int) (context.Context, trace.Span) {
	return otel.Tracer(ScopeName).Start(ctx, "filterexpr.parse",
		trace.WithAttributes(attribute.Int("filterexpr.input_length", inputLength)))
}

// EndParse records the outcome on the span and ends it.
func EndParse(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
