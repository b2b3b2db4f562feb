package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", "json")
	require.NoError(t, err)
	logger.Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])

	_, err = NewLogger(&buf, "info", "xml")
	require.Error(t, err)
	_, err = NewLogger(&buf, "loud", "text")
	require.Error(t, err)
}

func TestTelemetryRecordsMetricsAndLogs(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", "text")
	require.NoError(t, err)

	tel := &Telemetry{Logger: logger, Metrics: metrics}
	tel.Record(context.Background(), "dashboard.tenants.filter", map[string]any{
		KeyDuration: 2 * time.Millisecond,
		KeyMatches:  3,
		"plan":      "Professional",
	})
	tel.Record(context.Background(), "dashboard.tenants.filter", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Events.WithLabelValues("dashboard.tenants.filter")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.FilterMatches))
	assert.Contains(t, buf.String(), "dashboard.tenants.filter")
	assert.Contains(t, buf.String(), "plan=Professional")
}

func TestNilTelemetryIsSafe(t *testing.T) {
	var tel *Telemetry
	assert.NotPanics(t, func() {
		tel.Record(context.Background(), "event", map[string]any{"a": 1})
	})
	assert.NotPanics(t, func() {
		(&Telemetry{}).Record(context.Background(), "event", nil)
	})
}
