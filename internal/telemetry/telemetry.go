// Package telemetry wraps model invocations in OpenTelemetry spans. The
// global tracer provider resolves to a no-op unless an SDK is wired in at
// bootstrap, so emission is always best-effort and can never fail a call.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "todo-ai-backend"

// StartModelSpan opens a client span for one model invocation. The caller
// must end the span on every exit path.
func StartModelSpan(ctx context.Context, operation, modelID string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gen_ai.system", "aws.bedrock"),
			attribute.String("gen_ai.request.model", modelID),
		),
	)
}

// RecordUsage attaches token counts reported by the provider.
func RecordUsage(span trace.Span, inputTokens, outputTokens int) {
	span.SetAttributes(
		attribute.Int("gen_ai.usage.input_tokens", inputTokens),
		attribute.Int("gen_ai.usage.output_tokens", outputTokens),
	)
}

// RecordError marks the span failed.
func RecordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
