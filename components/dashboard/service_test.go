package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

type recordedEvent struct {
	name    string
	payload map[string]any
}

type recordingTelemetry struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recordingTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{name: event, payload: payload})
}

func (r *recordingTelemetry) find(name string) (recordedEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.name == name {
			return e, true
		}
	}
	return recordedEvent{}, false
}

func widgetIDs(widgets []ResolvedWidget) []string {
	ids := make([]string, len(widgets))
	for i, w := range widgets {
		ids[i] = w.ID
	}
	return ids
}

func TestResolvePageDashboard(t *testing.T) {
	telemetry := &recordingTelemetry{}
	service := NewService(Options{Telemetry: telemetry})

	view, err := service.ResolvePage(context.Background(), AppState{Page: PageDashboard})
	require.NoError(t, err)

	assert.Equal(t, PageDashboard, view.Page)
	assert.Equal(t, "Dashboard", view.Title)
	assert.Equal(t, []string{
		"dashboard.overview",
		"dashboard.chat-activity",
		"dashboard.revenue-growth",
		"dashboard.plan-distribution",
		"dashboard.recent-tenants",
	}, widgetIDs(view.Widgets))
	for _, w := range view.Widgets {
		assert.False(t, w.Unavailable, w.ID)
		assert.NotEmpty(t, w.Data, w.ID)
	}
	assert.Equal(t, "overview_stats", view.Widgets[0].Kind)
	require.Len(t, view.Navigation, 4)
	assert.True(t, view.Navigation[0].Active)

	event, ok := telemetry.find(EventPageResolve)
	require.True(t, ok)
	assert.Equal(t, "dashboard", event.payload["page"])
	assert.Equal(t, 5, event.payload["widgets"])
}

func TestResolvePageUnknownPageFallsBackToDashboard(t *testing.T) {
	service := NewService(Options{})
	view, err := service.ResolvePage(context.Background(), AppState{Page: "billing"})
	require.NoError(t, err)
	assert.Equal(t, PageDashboard, view.Page)
}

func TestResolvePageTenantsUsesCriteria(t *testing.T) {
	service := NewService(Options{})
	view, err := service.ResolvePage(context.Background(), AppState{
		Page:     PageTenants,
		Criteria: tenants.Criteria{Status: "Inactive"},
	})
	require.NoError(t, err)
	require.Len(t, view.Widgets, 1)

	data := view.Widgets[0].Data
	rows := data["rows"].([]map[string]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bali Wedding Expert", rows[0]["business_name"])
	assert.Equal(t, "inactive", view.State.Criteria.Status)
}

func TestResolvePageSelectsTab(t *testing.T) {
	service := NewService(Options{})

	view, err := service.ResolvePage(context.Background(), AppState{Page: PageAnalytics, Tab: "revenue"})
	require.NoError(t, err)
	assert.Equal(t, "revenue", view.Tab)
	assert.Equal(t, []string{"analytics.revenue"}, widgetIDs(view.Widgets))
	require.Len(t, view.Tabs, 3)

	view, err = service.ResolvePage(context.Background(), AppState{Page: PageSettings, Tab: "nope"})
	require.NoError(t, err)
	assert.Equal(t, "api_keys", view.Tab)
	assert.Equal(t, []string{"settings.api-keys"}, widgetIDs(view.Widgets))
}

func TestResolvePageLocalizes(t *testing.T) {
	service := NewService(Options{DefaultLocale: "id", Translator: DefaultTranslations()})
	view, err := service.ResolvePage(context.Background(), AppState{Page: PageSettings})
	require.NoError(t, err)
	assert.Equal(t, "Pengaturan", view.Title)
	assert.Equal(t, "Konfigurasi platform", view.Caption)
	assert.Equal(t, "Konfigurasi API", view.Widgets[0].Name)
	assert.Equal(t, "Kunci API", view.Tabs[0].Label)
}

func TestResolvePageMarksFailingProviderUnavailable(t *testing.T) {
	telemetry := &recordingTelemetry{}
	reg := NewRegistry()
	require.NoError(t, reg.RegisterProvider(WidgetOverviewStats, ProviderFunc(func(context.Context, WidgetContext) (WidgetData, error) {
		return nil, errors.New("analytics down")
	})))
	service := NewService(Options{Providers: reg, Telemetry: telemetry})

	view, err := service.ResolvePage(context.Background(), AppState{Page: PageDashboard})
	require.NoError(t, err)
	assert.True(t, view.Widgets[0].Unavailable)
	assert.Nil(t, view.Widgets[0].Data)
	assert.False(t, view.Widgets[1].Unavailable)

	event, ok := telemetry.find(EventProviderError)
	require.True(t, ok)
	assert.Equal(t, WidgetOverviewStats, event.payload["definition_id"])
	assert.Equal(t, "analytics down", event.payload["error"])
}

func TestFilterTenantsRecordsTelemetry(t *testing.T) {
	telemetry := &recordingTelemetry{}
	service := NewService(Options{Telemetry: telemetry})

	view, err := service.FilterTenants(context.Background(), tenants.Criteria{Search: "wedding", Plan: "business"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, view.IDs())

	event, ok := telemetry.find(EventTenantsFilter)
	require.True(t, ok)
	assert.Equal(t, 2, event.payload["matches"])
	assert.Equal(t, "Business", event.payload["plan"])
	_, timed := event.payload["duration"].(time.Duration)
	assert.True(t, timed)
}

func TestFilterTenantsWrapsRepositoryErrors(t *testing.T) {
	service := NewService(Options{Tenants: failingTenantRepo{}})
	_, err := service.FilterTenants(context.Background(), tenants.Criteria{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenant store offline")
}

func TestNotifyPublishesNotice(t *testing.T) {
	hook := NewBroadcastHook()
	notices, cancel := hook.Subscribe()
	defer cancel()
	service := NewService(Options{Notices: hook})

	notice, err := service.Notify(context.Background(), NoticeSuccess, "Settings saved!")
	require.NoError(t, err)
	assert.NotEmpty(t, notice.ID)

	select {
	case got := <-notices:
		assert.Equal(t, notice, got)
	case <-time.After(time.Second):
		t.Fatalf("expected notice to be delivered")
	}
}

func TestDefaultLayoutPassesCheck(t *testing.T) {
	if err := NewService(Options{}).CheckLayout(); err != nil {
		t.Fatalf("default layout failed check: %v", err)
	}
}
