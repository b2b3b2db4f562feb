package dashboard

import (
	"context"
	"math/rand/v2"
	"time"
)

// OverviewRepository loads the headline platform numbers for the dashboard page.
type OverviewRepository interface {
	FetchOverview(ctx context.Context) (OverviewReport, error)
}

// ChatReportRepository loads chat volume analytics.
type ChatReportRepository interface {
	FetchChatReport(ctx context.Context, query ChatQuery) (ChatReport, error)
}

// ImageReportRepository loads decoration image generation analytics.
type ImageReportRepository interface {
	FetchImageReport(ctx context.Context) (ImageReport, error)
}

// RevenueReportRepository loads subscription revenue analytics.
type RevenueReportRepository interface {
	FetchRevenueReport(ctx context.Context) (RevenueReport, error)
}

// SeriesPoint is one labelled value of a chart series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is chart-ready data. Rendering the chart is left to the client.
type Series struct {
	Name   string        `json:"name"`
	Unit   string        `json:"unit,omitempty"`
	Points []SeriesPoint `json:"points"`
}

// Max returns the largest value in the series, or 0 when empty.
func (s Series) Max() float64 {
	var max float64
	for _, p := range s.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

// OverviewReport carries the dashboard page figures.
type OverviewReport struct {
	TotalTenants     int           `json:"total_tenants"`
	ActiveTenants    int           `json:"active_tenants"`
	ChatsToday       int           `json:"chats_today"`
	ChatsMonth       int           `json:"chats_month"`
	ImagesToday      int           `json:"images_today"`
	MRR              int64         `json:"mrr"`
	MRRGrowth        string        `json:"mrr_growth"`
	ChatActivity     Series        `json:"chat_activity"`
	RevenueGrowth    Series        `json:"revenue_growth"`
	PlanDistribution []SeriesPoint `json:"plan_distribution"`
}

// ChatQuery configures the chat trend window.
type ChatQuery struct {
	Days int
	End  time.Time
}

// ChatReport summarises chat traffic.
type ChatReport struct {
	TotalChats   int     `json:"total_chats"`
	DailyAverage int     `json:"daily_average"`
	PeakHour     string  `json:"peak_hour"`
	ResponseRate float64 `json:"response_rate"`
	Trend        Series  `json:"trend"`
}

// ImageReport summarises AI decoration renders.
type ImageReport struct {
	TotalGenerated int     `json:"total_generated"`
	ThisMonth      int     `json:"this_month"`
	CreditsUsed    float64 `json:"credits_used"`
	SuccessRate    float64 `json:"success_rate"`
	Styles         Series  `json:"styles"`
}

// RevenueReport summarises recurring revenue.
type RevenueReport struct {
	MRR              int64   `json:"mrr"`
	MRRGrowth        string  `json:"mrr_growth"`
	ARR              int64   `json:"arr"`
	AveragePerTenant int64   `json:"average_per_tenant"`
	ChurnRate        float64 `json:"churn_rate"`
	Monthly          Series  `json:"monthly"`
}

type overviewStatsProvider struct {
	repo OverviewRepository
}

// NewOverviewStatsProvider renders the headline metric cards.
func NewOverviewStatsProvider(repo OverviewRepository) Provider {
	if repo == nil {
		repo = DemoOverviewRepository{}
	}
	return &overviewStatsProvider{repo: repo}
}

func (p *overviewStatsProvider) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	report, err := p.repo.FetchOverview(ctx)
	if err != nil {
		return nil, err
	}
	locale := meta.Viewer.Locale
	tr := func(key, fallback string, args map[string]any) string {
		return translateOrFallback(ctx, meta.Translator, key, locale, fallback, args)
	}
	cards := []map[string]any{
		{
			"label":  tr("widget.overview.total_tenants", "Total Tenants", nil),
			"value":  FormatThousands(int64(report.TotalTenants)),
			"detail": tr("widget.overview.active_suffix", "{count} active", map[string]any{"count": report.ActiveTenants}),
			"icon":   "building",
		},
		{
			"label":  tr("widget.overview.chats_today", "Chats Today", nil),
			"value":  FormatThousands(int64(report.ChatsToday)),
			"detail": FormatThousands(int64(report.ChatsMonth)) + " / month",
			"icon":   "message-circle",
		},
		{
			"label": tr("widget.overview.images_today", "Images Today", nil),
			"value": FormatThousands(int64(report.ImagesToday)),
			"icon":  "image",
		},
		{
			"label":  tr("widget.overview.mrr", "MRR", nil),
			"value":  FormatRupiahJuta(report.MRR, 1),
			"detail": report.MRRGrowth,
			"icon":   "wallet",
			"trend":  "up",
		},
	}
	return WidgetData{
		"cards":          cards,
		"total_tenants":  report.TotalTenants,
		"active_tenants": report.ActiveTenants,
		"chats_today":    report.ChatsToday,
		"chats_month":    report.ChatsMonth,
		"images_today":   report.ImagesToday,
		"mrr":            report.MRR,
		"mrr_growth":     report.MRRGrowth,
	}, nil
}

type overviewSeriesProvider struct {
	repo  OverviewRepository
	chart string
	pick  func(OverviewReport) Series
}

// NewChatActivityProvider renders the weekly chat bar chart data.
func NewChatActivityProvider(repo OverviewRepository) Provider {
	if repo == nil {
		repo = DemoOverviewRepository{}
	}
	return &overviewSeriesProvider{repo: repo, chart: "bar", pick: func(r OverviewReport) Series { return r.ChatActivity }}
}

// NewRevenueGrowthProvider renders the six month revenue line data.
func NewRevenueGrowthProvider(repo OverviewRepository) Provider {
	if repo == nil {
		repo = DemoOverviewRepository{}
	}
	return &overviewSeriesProvider{repo: repo, chart: "line", pick: func(r OverviewReport) Series { return r.RevenueGrowth }}
}

// NewPlanDistributionProvider renders tenant counts per plan.
func NewPlanDistributionProvider(repo OverviewRepository) Provider {
	if repo == nil {
		repo = DemoOverviewRepository{}
	}
	return &overviewSeriesProvider{repo: repo, chart: "pie", pick: func(r OverviewReport) Series {
		return Series{Name: "Plan Distribution", Unit: "tenants", Points: r.PlanDistribution}
	}}
}

func (p *overviewSeriesProvider) Fetch(ctx context.Context, _ WidgetContext) (WidgetData, error) {
	report, err := p.repo.FetchOverview(ctx)
	if err != nil {
		return nil, err
	}
	series := p.pick(report)
	var total float64
	for _, point := range series.Points {
		total += point.Value
	}
	return WidgetData{
		"chart":  p.chart,
		"series": series,
		"max":    series.Max(),
		"total":  total,
	}, nil
}

type chatAnalyticsProvider struct {
	repo ChatReportRepository
}

// NewChatAnalyticsProvider renders the chat analytics tab.
func NewChatAnalyticsProvider(repo ChatReportRepository) Provider {
	if repo == nil {
		repo = DemoChatRepository{}
	}
	return &chatAnalyticsProvider{repo: repo}
}

func (p *chatAnalyticsProvider) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	query := ChatQuery{Days: intOr(meta.Instance.Configuration["days"], defaultTrendDays)}
	report, err := p.repo.FetchChatReport(ctx, query)
	if err != nil {
		return nil, err
	}
	locale := meta.Viewer.Locale
	return WidgetData{
		"metrics": []map[string]any{
			{"label": "Total Chats", "value": FormatThousands(int64(report.TotalChats))},
			{"label": translateOrFallback(ctx, meta.Translator, "widget.chat.daily_average", locale, "Daily Average", nil), "value": FormatThousands(int64(report.DailyAverage))},
			{"label": translateOrFallback(ctx, meta.Translator, "widget.chat.peak_hour", locale, "Peak Hour", nil), "value": report.PeakHour},
			{"label": "Response Rate", "value": FormatPercent(report.ResponseRate)},
		},
		"chart":  "area",
		"series": report.Trend,
		"max":    report.Trend.Max(),
		"report": report,
	}, nil
}

type imageAnalyticsProvider struct {
	repo ImageReportRepository
}

// NewImageAnalyticsProvider renders the image analytics tab.
func NewImageAnalyticsProvider(repo ImageReportRepository) Provider {
	if repo == nil {
		repo = DemoImageRepository{}
	}
	return &imageAnalyticsProvider{repo: repo}
}

func (p *imageAnalyticsProvider) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	report, err := p.repo.FetchImageReport(ctx)
	if err != nil {
		return nil, err
	}
	credits := translateOrFallback(ctx, meta.Translator, "widget.image.credits", meta.Viewer.Locale, "Credits Used", nil)
	return WidgetData{
		"metrics": []map[string]any{
			{"label": "Total Generated", "value": FormatThousands(int64(report.TotalGenerated))},
			{"label": "This Month", "value": FormatThousands(int64(report.ThisMonth))},
			{"label": credits, "value": "$" + formatFloat(report.CreditsUsed, 1)},
			{"label": "Success Rate", "value": FormatPercent(report.SuccessRate)},
		},
		"chart":  "pie",
		"series": report.Styles,
		"report": report,
	}, nil
}

type revenueAnalyticsProvider struct {
	repo RevenueReportRepository
}

// NewRevenueAnalyticsProvider renders the revenue tab.
func NewRevenueAnalyticsProvider(repo RevenueReportRepository) Provider {
	if repo == nil {
		repo = DemoRevenueRepository{}
	}
	return &revenueAnalyticsProvider{repo: repo}
}

func (p *revenueAnalyticsProvider) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	report, err := p.repo.FetchRevenueReport(ctx)
	if err != nil {
		return nil, err
	}
	churn := translateOrFallback(ctx, meta.Translator, "widget.revenue.churn", meta.Viewer.Locale, "Churn Rate", nil)
	return WidgetData{
		"metrics": []map[string]any{
			{"label": "MRR", "value": FormatRupiahJuta(report.MRR, 2), "detail": report.MRRGrowth},
			{"label": "ARR", "value": FormatRupiahJuta(report.ARR, 1)},
			{"label": "Avg per Tenant", "value": FormatRupiahK(report.AveragePerTenant)},
			{"label": churn, "value": FormatPercent(report.ChurnRate)},
		},
		"chart":  "bar",
		"series": report.Monthly,
		"max":    report.Monthly.Max(),
		"report": report,
	}, nil
}

const (
	defaultTrendDays = 30
	maxTrendDays     = 90
	chatTrendSeed    = 2024
)

// DemoOverviewRepository returns the fixed dashboard figures.
type DemoOverviewRepository struct{}

// FetchOverview implements OverviewRepository.
func (DemoOverviewRepository) FetchOverview(context.Context) (OverviewReport, error) {
	return OverviewReport{
		TotalTenants:  47,
		ActiveTenants: 42,
		ChatsToday:    1247,
		ChatsMonth:    28934,
		ImagesToday:   89,
		MRR:           23850000,
		MRRGrowth:     "+18%",
		ChatActivity: labelledSeries("Chat Activity", "chats",
			[]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			[]float64{4200, 3800, 5100, 4700, 3200, 6800, 5900}),
		RevenueGrowth: labelledSeries("Revenue Growth", "Juta Rp",
			[]string{"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			[]float64{8.5, 12.3, 15.8, 18.2, 21.5, 23.85}),
		PlanDistribution: []SeriesPoint{
			{Label: "Starter", Value: 18},
			{Label: "Professional", Value: 19},
			{Label: "Business", Value: 10},
		},
	}, nil
}

// DemoChatRepository returns fixed chat totals and a seeded trend.
type DemoChatRepository struct {
	Now func() time.Time
}

// FetchChatReport implements ChatReportRepository.
func (r DemoChatRepository) FetchChatReport(_ context.Context, query ChatQuery) (ChatReport, error) {
	end := query.End
	if end.IsZero() {
		now := time.Now
		if r.Now != nil {
			now = r.Now
		}
		end = now()
	}
	return ChatReport{
		TotalChats:   28934,
		DailyAverage: 1247,
		PeakHour:     "19:00-21:00",
		ResponseRate: 98.5,
		Trend:        ChatTrend(end, query.Days, chatTrendSeed),
	}, nil
}

// ChatTrend produces a daily chat series ending at end with values in
// [800, 1500]. The same seed always yields the same values.
func ChatTrend(end time.Time, days int, seed uint64) Series {
	if days <= 0 {
		days = defaultTrendDays
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	points := make([]SeriesPoint, days)
	for i := range points {
		points[i] = SeriesPoint{
			Label: end.AddDate(0, 0, i-days+1).Format("2006-01-02"),
			Value: float64(800 + rng.IntN(701)),
		}
	}
	return Series{Name: "Daily Chats", Unit: "chats", Points: points}
}

// DemoImageRepository returns fixed image generation figures.
type DemoImageRepository struct{}

// FetchImageReport implements ImageReportRepository.
func (DemoImageRepository) FetchImageReport(context.Context) (ImageReport, error) {
	return ImageReport{
		TotalGenerated: 892,
		ThisMonth:      234,
		CreditsUsed:    178.4,
		SuccessRate:    99.2,
		Styles: labelledSeries("Decoration Styles", "images",
			[]string{"Rustic", "Modern", "Garden", "Traditional", "Luxury"},
			[]float64{234, 198, 156, 178, 126}),
	}, nil
}

// DemoRevenueRepository returns fixed revenue figures.
type DemoRevenueRepository struct{}

// FetchRevenueReport implements RevenueReportRepository.
func (DemoRevenueRepository) FetchRevenueReport(context.Context) (RevenueReport, error) {
	return RevenueReport{
		MRR:              23850000,
		MRRGrowth:        "+18%",
		ARR:              286200000,
		AveragePerTenant: 507000,
		ChurnRate:        2.3,
		Monthly: labelledSeries("Monthly Revenue", "Juta Rp",
			[]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			[]float64{5.2, 6.8, 8.5, 10.2, 12.3, 14.5, 15.8, 17.2, 18.9, 20.5, 22.1, 23.85}),
	}, nil
}

func labelledSeries(name, unit string, labels []string, values []float64) Series {
	points := make([]SeriesPoint, len(labels))
	for i, label := range labels {
		points[i] = SeriesPoint{Label: label, Value: values[i]}
	}
	return Series{Name: name, Unit: unit, Points: points}
}

func intOr(value any, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}
