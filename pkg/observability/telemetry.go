package observability

import (
	"context"
	"log/slog"
	"sort"
	"time"
)

// Payload keys with special meaning to Telemetry.
const (
	KeyDuration = "duration"
	KeyMatches  = "matches"
	KeyError    = "error"
)

// Telemetry logs dashboard events through slog and counts them in
// Prometheus. A nil Logger or Metrics disables that half.
type Telemetry struct {
	Logger  *slog.Logger
	Metrics *Metrics
}

// Record satisfies the dashboard Telemetry contract.
func (t *Telemetry) Record(ctx context.Context, event string, payload map[string]any) {
	if t == nil {
		return
	}
	if t.Metrics != nil {
		t.Metrics.IncrementEvent(event)
		if d, ok := payload[KeyDuration].(time.Duration); ok {
			t.Metrics.ObserveDuration(event, d)
		}
		if n, ok := payload[KeyMatches].(int); ok {
			t.Metrics.ObserveMatches(n)
		}
	}
	if t.Logger == nil {
		return
	}
	level := slog.LevelDebug
	if _, failed := payload[KeyError]; failed {
		level = slog.LevelWarn
	}
	t.Logger.Log(ctx, level, event, attrs(payload)...)
}

func attrs(payload map[string]any) []any {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, key := range keys {
		out = append(out, slog.Any(key, payload[key]))
	}
	return out
}
