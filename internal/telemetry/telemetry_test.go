package telemetry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// recordSpans installs an in-memory tracer provider for the duration of t.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	return rec
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, slog.LevelInfo, FormatJSON)
	require.NoError(t, err)
	l.Info("hello", slog.Int("n", 3))
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"n":3`)

	buf.Reset()
	l, err = NewLogger(&buf, slog.LevelWarn, FormatText)
	require.NoError(t, err)
	l.Info("dropped")
	l.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")

	_, err = NewLogger(&buf, slog.LevelInfo, "xml")
	assert.True(t, errors.Is(err, ErrUnknownLogFormat))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerWithTrace_NoSpan(t *testing.T) {
	l := Discard()
	assert.Same(t, l, LoggerWithTrace(context.Background(), l))
	assert.NotNil(t, LoggerWithTrace(context.Background(), nil))
}

func TestStartSpan_NoopProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test")
	require.NotNil(t, ctx)
	EndSpan(span, errors.New("boom"))
	EndSpan(span, nil)
}

func TestSpans_Recorded(t *testing.T) {
	rec := recordSpans(t)

	ctx, span := StartSpan(context.Background(), "ok", attribute.String("k", "v"))
	var buf bytes.Buffer
	l, err := NewLogger(&buf, slog.LevelInfo, FormatJSON)
	require.NoError(t, err)
	LoggerWithTrace(ctx, l).Info("inside")
	EndSpan(span, nil, attribute.Int("n", 1))

	_, failed := StartSpan(ctx, "failed")
	EndSpan(failed, errors.New("boom"))

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "ok", ended[0].Name())
	assert.Equal(t, codes.Ok, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.Int("n", 1))
	assert.Equal(t, "failed", ended[1].Name())
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, ended[0].SpanContext().SpanID(), ended[1].Parent().SpanID())

	assert.Contains(t, buf.String(), ended[0].SpanContext().TraceID().String())
	assert.Contains(t, buf.String(), `"span_id"`)
}

func TestInitStdoutTracing(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := InitStdoutTracing(&buf)
	require.NoError(t, err)

	_, span := StartSpan(context.Background(), "stdout-span")
	EndSpan(span, nil)
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name": "stdout-span"`)
}

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(searchTotal.WithLabelValues("test-strategy", OutcomeSolved))
	RecordSearch("test-strategy", OutcomeSolved, 10, 3)
	RecordSearch("test-strategy", OutcomeNoSolution, 4, 0)
	RecordSearch("test-strategy", OutcomeLimit, 4, 0)
	assert.Equal(t, before+1, testutil.ToFloat64(searchTotal.WithLabelValues("test-strategy", OutcomeSolved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(searchTotal.WithLabelValues("test-strategy", OutcomeNoSolution)))
	assert.Equal(t, 1.0, testutil.ToFloat64(searchTotal.WithLabelValues("test-strategy", OutcomeLimit)))

	RecordReach(12)
	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf))
	assert.Contains(t, buf.String(), "statespace_search_total")
	assert.Contains(t, buf.String(), "statespace_reach_states")
}
