package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotel/infras/otel"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Create")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_TraceError(t *testing.T) {
	t.Run("server error fails the span", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceIfError(errors.New("connection reset"))
		})

		assert.Equal(t, codes.Error, span.Status().Code)
	})

	t.Run("client error is only an event", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceIfError(failure.Conflict("Room is not available for the selected dates."))
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
		require.Len(t, span.Events(), 1)
		assert.Equal(t, "client_error", span.Events()[0].Name)
	})

	t.Run("nil is ignored", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceIfError(nil)
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
		assert.Empty(t, span.Events())
	})
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"booking.id":    int64(12),
			"room.price":    99.5,
			"room.features": []string{"wifi", "balcony"},
			"guest.vip":     true,
		})
	})

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "12", attrs["booking.id"])
	assert.Equal(t, "99.5", attrs["room.price"])
	assert.Equal(t, `["wifi","balcony"]`, attrs["room.features"])
	assert.Equal(t, "true", attrs["guest.vip"])
}
