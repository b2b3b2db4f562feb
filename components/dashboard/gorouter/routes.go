package gorouter

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/hadiant/go-admin-dashboard/components/dashboard"
	"github.com/hadiant/go-admin-dashboard/components/dashboard/httpapi"
	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

// ViewerResolver converts a router.Context into a dashboard.ViewerContext.
type ViewerResolver func(router.Context) dashboard.ViewerContext

// Config wires go-router with the dashboard controller, API handlers and
// the notice stream.
type Config[T any] struct {
	Router         router.Router[T]
	Controller     *dashboard.Controller
	API            *httpapi.Handlers
	Notices        *dashboard.BroadcastHook
	ViewerResolver ViewerResolver
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for dashboard endpoints.
type RouteConfig struct {
	Page      string
	Payload   string
	Tenants   string
	Settings  string
	Profile   string
	WebSocket string
	Assets    string
}

// Register mounts dashboard routes (HTML, JSON, forms, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := DefaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	viewerResolver := cfg.ViewerResolver
	if viewerResolver == nil {
		viewerResolver = defaultViewerResolver
	}

	if routes.Assets != "" {
		cfg.Router.Static(routes.Assets, ".", router.Static{
			FS:     dashboard.StaticAssets(),
			Root:   ".",
			MaxAge: 86400,
		})
	}

	group := cfg.Router.Group(base)

	// Static paths first so the :page wildcard does not shadow them.
	if cfg.API != nil {
		registerAPI(group, cfg.API, viewerResolver, routes)
	}
	if cfg.Notices != nil {
		registerWebSocket(group, cfg.Notices, routes.WebSocket)
	}

	group.Get(routes.Payload, router.WrapHandler(func(ctx router.Context) error {
		payload, err := cfg.Controller.PagePayload(ctx.Context(), stateFor(ctx, viewerResolver))
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, payload)
	}))

	group.Get(routes.Page, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := cfg.Controller.RenderPage(ctx.Context(), stateFor(ctx, viewerResolver), &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	return nil
}

func registerAPI[T any](r router.Router[T], api *httpapi.Handlers, resolver ViewerResolver, routes RouteConfig) {
	if api.Tenants != nil {
		r.Get(routes.Tenants, router.WrapHandler(func(ctx router.Context) error {
			view, err := api.Tenants.Query(ctx.Context(), tenants.Criteria{
				Search: ctx.Query("search"),
				Plan:   ctx.Query("plan"),
				Status: ctx.Query("status"),
			})
			if err != nil {
				return respondError(ctx, err)
			}
			return ctx.JSON(http.StatusOK, view)
		}))
	}

	if api.SaveSettings != nil {
		r.Post(routes.Settings, router.WrapHandler(func(ctx router.Context) error {
			values, err := httpapi.DecodeValues(ctx.Header("Content-Type"), ctx.Body())
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			notice, err := api.Save(ctx.Context(), values, resolver(ctx).Locale)
			if err != nil {
				return respondError(ctx, err)
			}
			return ctx.JSON(http.StatusOK, notice)
		}))
	}

	if api.UpdateProfile != nil {
		r.Post(routes.Profile, router.WrapHandler(func(ctx router.Context) error {
			values, err := httpapi.DecodeValues(ctx.Header("Content-Type"), ctx.Body())
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			notice, err := api.Profile(ctx.Context(), values, resolver(ctx).Locale)
			if err != nil {
				return respondError(ctx, err)
			}
			return ctx.JSON(http.StatusOK, notice)
		}))
	}
}

func registerWebSocket[T any](r router.Router[T], hook *dashboard.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		err := hook.Stream(ws.Context(), func(notice dashboard.Notice) error {
			return ws.WriteJSON(notice)
		})
		if err != nil {
			return err
		}
		return ws.Close()
	})
}

func stateFor(ctx router.Context, resolver ViewerResolver) dashboard.AppState {
	viewer := resolver(ctx)
	state := httpapi.StateFromQuery(ctx.Param("page"), func(key string) string {
		return ctx.Query(key)
	}, viewer.Locale)
	state.Viewer = viewer
	return state
}

func defaultViewerResolver(ctx router.Context) dashboard.ViewerContext {
	var viewer dashboard.ViewerContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		viewer.UserID = v
	}
	if roles, ok := ctx.Locals("roles").([]string); ok {
		viewer.Roles = roles
	}
	locals, _ := ctx.Locals("locale").(string)
	viewer.Locale = ResolveLocale(locals, ctx.Query("locale"), ctx.Header("Accept-Language"))
	return viewer
}

// ResolveLocale picks the first non-empty locale from request locals, the
// locale query parameter and the Accept-Language header.
func ResolveLocale(locals, query, acceptLanguage string) string {
	for _, candidate := range []string{locals, query, httpapi.PreferredLanguage(acceptLanguage)} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return strings.ToLower(candidate)
		}
	}
	return ""
}

func respondError(ctx router.Context, err error) error {
	return ctx.JSON(httpapi.StatusFor(err), map[string]string{"error": err.Error()})
}

// DefaultRouteConfig fills empty routes with the standard paths.
func DefaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Page == "" {
		routes.Page = "/:page"
	}
	if routes.Payload == "" {
		routes.Payload = "/:page/_payload"
	}
	if routes.Tenants == "" {
		routes.Tenants = "/api/tenants"
	}
	if routes.Settings == "" {
		routes.Settings = "/settings"
	}
	if routes.Profile == "" {
		routes.Profile = "/profile"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws/notices"
	}
	if routes.Assets == "" {
		routes.Assets = dashboard.DefaultAssetsPath
	}
	return routes
}
