package dashboard

import (
	"github.com/hadiant/go-admin-dashboard/pkg/settings"
	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

// ProviderDeps carries the data sources behind the built-in widgets. Nil
// fields fall back to the demo repositories and the tenant seed.
type ProviderDeps struct {
	Tenants  tenants.Repository
	Overview OverviewRepository
	Chats    ChatReportRepository
	Images   ImageReportRepository
	Revenue  RevenueReportRepository
	Settings SettingsSource
	Display  settings.DisplayConfig
}

// DefaultProviders builds the provider for every built-in widget code.
func DefaultProviders(deps ProviderDeps) map[string]Provider {
	return map[string]Provider{
		WidgetOverviewStats:    NewOverviewStatsProvider(deps.Overview),
		WidgetChatActivity:     NewChatActivityProvider(deps.Overview),
		WidgetRevenueGrowth:    NewRevenueGrowthProvider(deps.Overview),
		WidgetPlanDistribution: NewPlanDistributionProvider(deps.Overview),
		WidgetRecentTenants:    NewRecentTenantsProvider(deps.Tenants),
		WidgetTenantDirectory:  NewTenantDirectoryProvider(deps.Tenants),
		WidgetChatAnalytics:    NewChatAnalyticsProvider(deps.Chats),
		WidgetImageAnalytics:   NewImageAnalyticsProvider(deps.Images),
		WidgetRevenueAnalytics: NewRevenueAnalyticsProvider(deps.Revenue),
		WidgetAPIKeys:          NewAPIKeysProvider(deps.Settings, deps.Display),
		WidgetPlans:            NewPlansProvider(),
		WidgetProfile:          NewProfileProvider(deps.Settings),
	}
}
