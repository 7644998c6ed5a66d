package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest creates a manual reader and swaps the global provider.
// Returns the reader and a cleanup function.
func setupMetricsTest(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
	})

	return reader
}

// collectMetrics reads all recorded metrics.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

// findMetric locates a metric by name in collected data.
func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

// TestNewOtelMetrics tests instrument creation against a real provider.
func TestNewOtelMetrics(t *testing.T) {
	setupMetricsTest(t)

	m, err := newOtelMetrics()

	require.NoError(t, err)
	require.NotNil(t, m)
}

// TestRecordNodeExecution tests the node execution instruments.
func TestRecordNodeExecution(t *testing.T) {
	reader := setupMetricsTest(t)
	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordNodeExecution(ctx, "classify", 50*time.Millisecond, nil)
	m.RecordNodeExecution(ctx, "joke_teller", 120*time.Millisecond, nil)

	rm := collectMetrics(t, reader)

	executions, ok := findMetric(rm, "chatgraph.node.executions")
	require.True(t, ok)
	sum, ok := executions.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2), total)

	_, ok = findMetric(rm, "chatgraph.node.latency_ms")
	assert.True(t, ok)

	// No errors recorded, so the error counter has no data points.
	errMetric, ok := findMetric(rm, "chatgraph.node.errors")
	if ok {
		errSum := errMetric.Data.(metricdata.Sum[int64])
		assert.Empty(t, errSum.DataPoints)
	}
}

// TestRecordNodeExecution_Error tests the error counter.
func TestRecordNodeExecution_Error(t *testing.T) {
	reader := setupMetricsTest(t)
	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordNodeExecution(context.Background(), "fallback", time.Millisecond, errors.New("boom"))

	rm := collectMetrics(t, reader)
	errMetric, ok := findMetric(rm, "chatgraph.node.errors")
	require.True(t, ok)
	errSum, ok := errMetric.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, errSum.DataPoints, 1)
	assert.Equal(t, int64(1), errSum.DataPoints[0].Value)
}

// TestRecordGraphRun tests the run instruments.
func TestRecordGraphRun(t *testing.T) {
	reader := setupMetricsTest(t)
	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordGraphRun(ctx, true, 200*time.Millisecond)
	m.RecordGraphRun(ctx, false, 10*time.Millisecond)

	rm := collectMetrics(t, reader)
	runs, ok := findMetric(rm, "chatgraph.graph.runs")
	require.True(t, ok)
	sum, ok := runs.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	// Success and failure land in separate attribute sets.
	assert.Len(t, sum.DataPoints, 2)
}

// TestRecordCheckpoint tests the checkpoint size histogram.
func TestRecordCheckpoint(t *testing.T) {
	reader := setupMetricsTest(t)
	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordCheckpoint(context.Background(), "classify", 512)

	rm := collectMetrics(t, reader)
	size, ok := findMetric(rm, "chatgraph.checkpoint.size_bytes")
	require.True(t, ok)
	hist, ok := size.Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, int64(512), hist.DataPoints[0].Sum)
}

// TestNoopMetrics tests that the no-op recorder is callable.
func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordNodeExecution(ctx, "a", time.Second, nil)
		m.RecordNodeExecution(ctx, "a", time.Second, errors.New("x"))
		m.RecordGraphRun(ctx, true, time.Second)
		m.RecordCheckpoint(ctx, "a", 100)
	})
}
