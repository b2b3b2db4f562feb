package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

var (
	// ErrUnknownPage is returned for layout entries naming a page that does not exist.
	ErrUnknownPage = errors.New("dashboard: unknown page")
	// ErrUnknownWidget is returned when a widget code has no registered definition.
	ErrUnknownWidget = errors.New("dashboard: unknown widget")
	// ErrInvalidConfig wraps widget configuration schema failures.
	ErrInvalidConfig = errors.New("dashboard: invalid widget configuration")

	errMissingWidgetCode  = errors.New("dashboard: widget definition code is required")
	errTranslationMissing = errors.New("dashboard: translation missing")
)

// Options configures the dashboard Service. Nil collaborators fall back to
// the built-in registry, the embedded layout and the tenant seed.
type Options struct {
	Providers       ProviderRegistry
	Layout          *LayoutManifest
	ConfigValidator ConfigValidator
	Tenants         tenants.Repository
	Translator      TranslationService
	Notices         NoticeHook
	Telemetry       Telemetry
	DefaultLocale   string
}

// Service resolves pages into widget data and filters the tenant directory.
type Service struct {
	opts Options
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Providers == nil {
		opts.Providers = NewRegistryWith(ProviderDeps{Tenants: opts.Tenants})
	}
	if opts.Layout == nil {
		opts.Layout = mustDefaultLayout()
	}
	if opts.ConfigValidator == nil {
		opts.ConfigValidator = NewJSONSchemaValidator()
	}
	if opts.Tenants == nil {
		opts.Tenants = tenants.NewStaticRepository(nil)
	}
	if opts.Notices == nil {
		opts.Notices = noopNoticeHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

func mustDefaultLayout() *LayoutManifest {
	layout, err := DefaultLayout()
	if err != nil {
		panic(err)
	}
	return layout
}

// CheckLayout verifies every layout widget is registered and correctly configured.
func (s *Service) CheckLayout() error {
	return s.opts.Layout.Check(s.opts.Providers, s.opts.ConfigValidator)
}

// ResolvedWidget is a widget instance with its provider payload attached.
type ResolvedWidget struct {
	WidgetInstance
	Kind        string     `json:"kind"`
	Name        string     `json:"name"`
	Data        WidgetData `json:"data,omitempty"`
	Unavailable bool       `json:"unavailable,omitempty"`
}

// PageView is everything needed to render one page.
type PageView struct {
	Page       Page             `json:"page"`
	Title      string           `json:"title"`
	Caption    string           `json:"caption"`
	Tab        string           `json:"tab,omitempty"`
	Tabs       []Tab            `json:"tabs,omitempty"`
	Widgets    []ResolvedWidget `json:"widgets"`
	Navigation []NavItem        `json:"navigation"`
	State      AppState         `json:"state"`
}

// ResolvePage normalizes state and fetches every widget of the page. A
// failing provider marks its widget unavailable instead of failing the page.
func (s *Service) ResolvePage(ctx context.Context, state AppState) (PageView, error) {
	start := time.Now()
	state = state.Normalize()
	if state.Viewer.Locale == "" {
		state.Viewer.Locale = s.opts.DefaultLocale
	}
	locale := state.Viewer.Locale
	instances := s.opts.Layout.Instances(state.Page, state.Tab)
	widgets := make([]ResolvedWidget, 0, len(instances))
	for _, inst := range instances {
		widgets = append(widgets, s.resolveWidget(ctx, state, inst))
	}
	view := PageView{
		Page:       state.Page,
		Title:      state.Page.Title(locale),
		Caption:    state.Page.Caption(locale),
		Tab:        state.Tab,
		Tabs:       state.Page.Tabs(locale),
		Widgets:    widgets,
		Navigation: Navigation(state.Page, locale),
		State:      state,
	}
	s.recordTelemetry(ctx, EventPageResolve, map[string]any{
		"page":     string(state.Page),
		"tab":      state.Tab,
		"viewer":   state.Viewer.UserID,
		"widgets":  len(widgets),
		"duration": time.Since(start),
	})
	return view, nil
}

func (s *Service) resolveWidget(ctx context.Context, state AppState, inst WidgetInstance) ResolvedWidget {
	resolved := ResolvedWidget{
		WidgetInstance: inst,
		Kind:           widgetKind(inst.DefinitionID),
		Name:           inst.DefinitionID,
	}
	if def, ok := s.opts.Providers.Definition(inst.DefinitionID); ok {
		resolved.Name = def.NameForLocale(state.Viewer.Locale)
	}
	provider, ok := s.opts.Providers.Provider(inst.DefinitionID)
	if !ok || provider == nil {
		resolved.Unavailable = true
		return resolved
	}
	data, err := provider.Fetch(ctx, WidgetContext{
		Instance:   inst,
		Viewer:     state.Viewer,
		State:      state,
		Translator: s.opts.Translator,
	})
	if err != nil {
		s.recordTelemetry(ctx, EventProviderError, map[string]any{
			"definition_id": inst.DefinitionID,
			"widget_id":     inst.ID,
			"error":         err.Error(),
		})
		resolved.Unavailable = true
		return resolved
	}
	resolved.Data = data
	return resolved
}

// widgetKind strips the namespace from a widget code: "hadiant.widget.plans" -> "plans".
func widgetKind(code string) string {
	if idx := strings.LastIndex(code, "."); idx >= 0 {
		return code[idx+1:]
	}
	return code
}

// FilterTenants lists the tenant directory and applies criteria.
func (s *Service) FilterTenants(ctx context.Context, criteria tenants.Criteria) (tenants.View, error) {
	start := time.Now()
	records, err := s.opts.Tenants.List(ctx)
	if err != nil {
		s.recordTelemetry(ctx, EventTenantsFilter, map[string]any{"error": err.Error()})
		return tenants.View{}, fmt.Errorf("dashboard: list tenants: %w", err)
	}
	criteria = criteria.Normalize()
	view := tenants.Filter(records, criteria)
	s.recordTelemetry(ctx, EventTenantsFilter, map[string]any{
		"search":   criteria.Search,
		"plan":     criteria.Plan,
		"status":   criteria.Status,
		"matches":  view.TotalCount,
		"duration": time.Since(start),
	})
	return view, nil
}

// Notify publishes a UI notice to subscribers.
func (s *Service) Notify(ctx context.Context, kind NoticeKind, message string) (Notice, error) {
	notice := NewNotice(kind, message)
	if err := s.opts.Notices.Publish(ctx, notice); err != nil {
		return notice, err
	}
	s.recordTelemetry(ctx, EventNoticePublish, map[string]any{
		"notice_id": notice.ID,
		"kind":      string(kind),
	})
	return notice, nil
}

// Translate resolves key for locale, falling back to fallback.
func (s *Service) Translate(ctx context.Context, key, locale, fallback string) string {
	if locale == "" {
		locale = s.opts.DefaultLocale
	}
	return translateOrFallback(ctx, s.opts.Translator, key, locale, fallback, nil)
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}
