package dashboard

import (
	"context"
	"strings"

	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

const defaultRecentTenants = 5

type recentTenantsProvider struct {
	repo tenants.Repository
}

// NewRecentTenantsProvider lists the first tenants of the directory.
func NewRecentTenantsProvider(repo tenants.Repository) Provider {
	if repo == nil {
		repo = tenants.NewStaticRepository(nil)
	}
	return &recentTenantsProvider{repo: repo}
}

func (p *recentTenantsProvider) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	records, err := p.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	limit := intOr(meta.Instance.Configuration["limit"], defaultRecentTenants)
	if limit <= 0 {
		limit = defaultRecentTenants
	}
	if limit < len(records) {
		records = records[:limit]
	}
	return WidgetData{
		"rows":  tenantRows(records),
		"empty": translateOrFallback(ctx, meta.Translator, "widget.recent_tenants.empty", meta.Viewer.Locale, "No tenants yet", nil),
	}, nil
}

type tenantDirectoryProvider struct {
	repo tenants.Repository
}

// NewTenantDirectoryProvider filters the tenant directory with the request
// criteria and returns the rows plus their aggregates.
func NewTenantDirectoryProvider(repo tenants.Repository) Provider {
	if repo == nil {
		repo = tenants.NewStaticRepository(nil)
	}
	return &tenantDirectoryProvider{repo: repo}
}

func (p *tenantDirectoryProvider) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	records, err := p.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	criteria := meta.State.Criteria.Normalize()
	view := tenants.Filter(records, criteria)
	locale := meta.Viewer.Locale
	return WidgetData{
		"criteria":          criteria,
		"plan_options":      filterOptions(planNames()),
		"status_options":    filterOptions(statusNames()),
		"rows":              tenantRows(view.Records),
		"total_count":       view.TotalCount,
		"active_count":      view.ActiveCount,
		"total_chats_month": FormatThousands(int64(view.TotalChatsMonth)),
		"total_mrr":         FormatRupiah(view.TotalMRR),
		"empty":             translateOrFallback(ctx, meta.Translator, "widget.tenant_directory.empty", locale, "No tenants match the filter", nil),
		"search_label":      translateOrFallback(ctx, meta.Translator, "widget.tenant_directory.search", locale, "Search business name", nil),
	}, nil
}

func tenantRows(records []tenants.Record) []map[string]any {
	rows := make([]map[string]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]any{
			"id":            r.ID,
			"business_name": r.BusinessName,
			"phone":         r.Phone,
			"plan":          string(r.Plan),
			"plan_tone":     strings.ToLower(string(r.Plan)),
			"status":        string(r.Status),
			"status_tone":   statusTone(r.Status),
			"chats_today":   r.ChatsToday,
			"chats_month":   FormatThousands(int64(r.ChatsMonth)),
			"images":        r.Images,
			"mrr":           FormatRupiah(r.MRR),
		})
	}
	return rows
}

func statusTone(status tenants.Status) string {
	if status == tenants.StatusActive {
		return "success"
	}
	return "danger"
}

func planNames() []string {
	plans := tenants.Plans()
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = string(p)
	}
	return out
}

func statusNames() []string {
	statuses := tenants.Statuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// filterOptions prepends the "all" choice used by the filter dropdowns.
func filterOptions(values []string) []map[string]string {
	options := []map[string]string{{"value": tenants.All, "label": "All"}}
	for _, v := range values {
		label := v
		if label != "" {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
		options = append(options, map[string]string{"value": v, "label": label})
	}
	return options
}
