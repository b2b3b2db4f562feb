package dashboard

// Widget codes.
const (
	WidgetOverviewStats    = "hadiant.widget.overview_stats"
	WidgetChatActivity     = "hadiant.widget.chat_activity"
	WidgetRevenueGrowth    = "hadiant.widget.revenue_growth"
	WidgetPlanDistribution = "hadiant.widget.plan_distribution"
	WidgetRecentTenants    = "hadiant.widget.recent_tenants"
	WidgetTenantDirectory  = "hadiant.widget.tenant_directory"
	WidgetChatAnalytics    = "hadiant.widget.chat_analytics"
	WidgetImageAnalytics   = "hadiant.widget.image_analytics"
	WidgetRevenueAnalytics = "hadiant.widget.revenue_analytics"
	WidgetAPIKeys          = "hadiant.widget.api_keys"
	WidgetPlans            = "hadiant.widget.plans"
	WidgetProfile          = "hadiant.widget.profile"
)

var emptySchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
}

var defaultWidgetDefinitions = []WidgetDefinition{
	{
		Code:          WidgetOverviewStats,
		Name:          "Platform Overview",
		NameLocalized: map[string]string{"id": "Ringkasan Platform"},
		Description:   "Tenant, chat, image and revenue headline numbers",
		Category:      "stats",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetChatActivity,
		Name:          "Chat Activity (7 Days)",
		NameLocalized: map[string]string{"id": "Aktivitas Chat (7 Hari)"},
		Category:      "charts",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetRevenueGrowth,
		Name:          "Revenue Growth",
		NameLocalized: map[string]string{"id": "Pertumbuhan Pendapatan"},
		Category:      "charts",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetPlanDistribution,
		Name:          "Plan Distribution",
		NameLocalized: map[string]string{"id": "Distribusi Paket"},
		Category:      "charts",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetRecentTenants,
		Name:          "Recent Tenants",
		NameLocalized: map[string]string{"id": "Klien Terbaru"},
		Category:      "tenants",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{"type": "integer", "minimum": 1, "maximum": 50, "default": defaultRecentTenants},
			},
			"additionalProperties": false,
		},
	},
	{
		Code:          WidgetTenantDirectory,
		Name:          "Tenant Directory",
		NameLocalized: map[string]string{"id": "Direktori Klien"},
		Description:   "Searchable tenant list with plan and status filters",
		Category:      "tenants",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetChatAnalytics,
		Name:          "Chat Analytics",
		NameLocalized: map[string]string{"id": "Analitik Chat"},
		Category:      "analytics",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"days": map[string]any{"type": "integer", "minimum": 7, "maximum": maxTrendDays, "default": defaultTrendDays},
			},
			"additionalProperties": false,
		},
	},
	{
		Code:          WidgetImageAnalytics,
		Name:          "Image Analytics",
		NameLocalized: map[string]string{"id": "Analitik Gambar"},
		Category:      "analytics",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetRevenueAnalytics,
		Name:          "Revenue Analytics",
		NameLocalized: map[string]string{"id": "Analitik Pendapatan"},
		Category:      "analytics",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetAPIKeys,
		Name:          "API Configuration",
		NameLocalized: map[string]string{"id": "Konfigurasi API"},
		Category:      "settings",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetPlans,
		Name:          "Subscription Plans",
		NameLocalized: map[string]string{"id": "Paket Langganan"},
		Category:      "settings",
		Schema:        emptySchema,
	},
	{
		Code:          WidgetProfile,
		Name:          "Admin Profile",
		NameLocalized: map[string]string{"id": "Profil Admin"},
		Category:      "settings",
		Schema:        emptySchema,
	},
}

// DefaultWidgetDefinitions returns the built-in widget definitions.
func DefaultWidgetDefinitions() []WidgetDefinition {
	out := make([]WidgetDefinition, len(defaultWidgetDefinitions))
	copy(out, defaultWidgetDefinitions)
	return out
}
