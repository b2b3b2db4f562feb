package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/hadiant/go-admin-dashboard/components/dashboard"
	"github.com/hadiant/go-admin-dashboard/components/dashboard/commands"
	"github.com/hadiant/go-admin-dashboard/components/dashboard/httpapi"
	"github.com/hadiant/go-admin-dashboard/components/dashboard/queries"
	"github.com/hadiant/go-admin-dashboard/pkg/analytics"
	"github.com/hadiant/go-admin-dashboard/pkg/observability"
	"github.com/hadiant/go-admin-dashboard/pkg/settings"
	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

// application is the fully wired dashboard shared by the commands.
type application struct {
	logger    *slog.Logger
	registry  *prometheus.Registry
	telemetry *observability.Telemetry
	store     *settings.Store
	notices   *dashboard.BroadcastHook
	service   *dashboard.Service
	api       *httpapi.Handlers
}

func newApplication(g *Globals, logOut io.Writer) (*application, error) {
	logger, err := observability.NewLogger(logOut, g.LogLevel, g.LogFormat)
	if err != nil {
		return nil, err
	}

	display := settings.DefaultDisplayConfig()
	if g.DisplayConfig != "" {
		overrides, err := settings.LoadDisplayConfig(g.DisplayConfig)
		if err != nil {
			return nil, err
		}
		display = display.Merge(overrides)
	}

	layout, err := dashboard.LoadLayout(g.Layout)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	telemetry := &observability.Telemetry{Logger: logger, Metrics: observability.NewMetrics(registry)}

	store := settings.NewStore()
	repo := tenants.NewStaticRepository(nil)
	deps := analytics.ProviderDeps(analytics.NewMockClient(analytics.DefaultMockData()), dashboard.ProviderDeps{
		Tenants:  repo,
		Settings: store,
		Display:  display,
	})

	widgets := dashboard.NewRegistryWith(deps)
	if err := widgets.Err(); err != nil {
		return nil, fmt.Errorf("widget hooks: %w", err)
	}

	notices := dashboard.NewBroadcastHook()
	service := dashboard.NewService(dashboard.Options{
		Providers:     widgets,
		Layout:        layout,
		Tenants:       repo,
		Translator:    dashboard.DefaultTranslations(),
		Notices:       notices,
		Telemetry:     telemetry,
		DefaultLocale: g.Locale,
	})
	if err := service.CheckLayout(); err != nil {
		return nil, fmt.Errorf("layout %s: %w", layout.Source, err)
	}

	return &application{
		logger:    logger,
		registry:  registry,
		telemetry: telemetry,
		store:     store,
		notices:   notices,
		service:   service,
		api: &httpapi.Handlers{
			Page:          queries.NewPageQuery(service),
			Tenants:       queries.NewTenantsQuery(service),
			SaveSettings:  commands.NewSaveSettingsCommand(store, service, telemetry),
			UpdateProfile: commands.NewUpdateProfileCommand(store, service, telemetry),
		},
	}, nil
}
