package chirouter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hadiant/go-admin-dashboard/components/dashboard"
	"github.com/hadiant/go-admin-dashboard/components/dashboard/httpapi"
)

// Config holds the handlers and collaborators served by the ops router.
type Config struct {
	API      *httpapi.Handlers
	Notices  *dashboard.BroadcastHook
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewRouter builds the chi router exposing the JSON API, notice streams and
// Prometheus metrics.
func NewRouter(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	if api := cfg.API; api != nil {
		r.Route("/api", func(r chi.Router) {
			if api.Page != nil {
				r.Get("/pages/{page}", func(w http.ResponseWriter, req *http.Request) {
					api.HandlePage(w, req, chi.URLParam(req, "page"))
				})
			}
			r.Get("/tenants", orNotImplemented(api.Tenants != nil, api.HandleTenants))
			r.Post("/settings", orNotImplemented(api.SaveSettings != nil, api.HandleSaveSettings))
			r.Post("/profile", orNotImplemented(api.UpdateProfile != nil, api.HandleUpdateProfile))
		})
	}

	if cfg.Notices != nil {
		r.Get("/notices/stream", cfg.Notices.ServeSSE)
		r.Get("/notices/ws", cfg.Notices.ServeWebSocket)
	}

	return r
}

func orNotImplemented(wired bool, h http.HandlerFunc) http.HandlerFunc {
	if wired {
		return h
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotImplemented)
		_, _ = w.Write([]byte(`{"error":"endpoint not configured"}`))
	}
}
