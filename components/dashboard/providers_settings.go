package dashboard

import (
	"context"
	"strings"

	"github.com/hadiant/go-admin-dashboard/pkg/settings"
	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

// SettingsSource exposes the current settings values and admin profile.
type SettingsSource interface {
	Values(ctx context.Context) map[string]string
	Profile(ctx context.Context) settings.Profile
}

type apiKeysProvider struct {
	source  SettingsSource
	display settings.DisplayConfig
}

// NewAPIKeysProvider renders integration fields through the display config,
// so masked fields never reach the template.
func NewAPIKeysProvider(source SettingsSource, display settings.DisplayConfig) Provider {
	if source == nil {
		source = settings.NewStore()
	}
	if display == nil {
		display = settings.DefaultDisplayConfig()
	}
	return &apiKeysProvider{source: source, display: display}
}

func (p *apiKeysProvider) Fetch(ctx context.Context, _ WidgetContext) (WidgetData, error) {
	return WidgetData{
		"integrations": settings.Render(p.source.Values(ctx), p.display),
		"action":       "/admin/settings",
	}, nil
}

// NewPlansProvider renders the subscription plan catalog.
func NewPlansProvider() Provider {
	return ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		unlimited := translateOrFallback(ctx, meta.Translator, "widget.plans.unlimited", meta.Viewer.Locale, "Unlimited", nil)
		catalog := tenants.Catalog()
		plans := make([]map[string]any, 0, len(catalog))
		for _, terms := range catalog {
			chats := FormatThousands(int64(terms.ChatLimit))
			if terms.UnlimitedChats() {
				chats = unlimited
			}
			plans = append(plans, map[string]any{
				"plan":        string(terms.Plan),
				"tone":        strings.ToLower(string(terms.Plan)),
				"price":       FormatRupiahK(terms.MonthlyPrice),
				"chat_limit":  chats,
				"image_limit": terms.ImageLimit,
				"wa_sessions": terms.WASessions,
			})
		}
		return WidgetData{"plans": plans}, nil
	})
}

type profileProvider struct {
	source SettingsSource
}

// NewProfileProvider renders the admin profile form.
func NewProfileProvider(source SettingsSource) Provider {
	if source == nil {
		source = settings.NewStore()
	}
	return &profileProvider{source: source}
}

func (p *profileProvider) Fetch(ctx context.Context, _ WidgetContext) (WidgetData, error) {
	profile := p.source.Profile(ctx)
	return WidgetData{
		"full_name": profile.FullName,
		"email":     profile.Email,
		"initials":  profile.Initials(),
		"action":    "/admin/profile",
	}, nil
}
