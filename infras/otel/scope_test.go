package otel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type status string

func (s status) String() string { return string(s) }

func TestToAttribute(t *testing.T) {
	at := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "101", want: attribute.StringValue("101")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "int64", value: int64(7), want: attribute.Int64Value(7)},
		{name: "float64", value: 1250.5, want: attribute.Float64Value(1250.5)},
		{name: "string slice", value: []string{"admin", "reception"}, want: attribute.StringSliceValue([]string{"admin", "reception"})},
		{name: "time", value: at, want: attribute.StringValue("2026-03-01T14:00:00Z")},
		{name: "stringer", value: status("occupied"), want: attribute.StringValue("occupied")},
		{name: "fallback", value: struct{ N int }{N: 1}, want: attribute.StringValue("{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("key", tt.value)
			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}

func TestScope_TraceError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	o := &otelImpl{TracerProvider: provider}

	_, scope := o.NewScope(t.Context(), "test", "booking.CheckIn")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("room is not reserved"))
	scope.End()

	spans := recorder.Ended()
	assert.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "room is not reserved", spans[0].Status().Description)
}

func TestScope_TraceIfError_DeferredNamedReturn(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	o := &otelImpl{TracerProvider: provider}

	checkIn := func(fail bool) (err error) {
		_, scope := o.NewScope(t.Context(), "test", "booking.CheckIn")
		defer scope.End()
		defer func() { scope.TraceIfError(err) }()

		if fail {
			err = errors.New("room is not reserved")
		}

		return err
	}

	assert.Error(t, checkIn(true))
	assert.NoError(t, checkIn(false))

	spans := recorder.Ended()
	assert.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "room is not reserved", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)
	assert.Equal(t, codes.Unset, spans[1].Status().Code)
}

func TestSampleRatio(t *testing.T) {
	assert.InDelta(t, 1.0, sampleRatio(0), 0)
	assert.InDelta(t, 1.0, sampleRatio(2), 0)
	assert.InDelta(t, 0.25, sampleRatio(0.25), 0)
}
