package commands

import (
	"context"

	dashboard "github.com/hadiant/go-admin-dashboard/components/dashboard"
)

// Telemetry allows commands to emit structured events.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// notifier publishes the confirmation toast after a successful command.
type notifier interface {
	Notify(ctx context.Context, kind dashboard.NoticeKind, message string) (dashboard.Notice, error)
	Translate(ctx context.Context, key, locale, fallback string) string
}
