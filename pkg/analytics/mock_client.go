package analytics

import (
	"context"
	"sync"
	"time"

	dashboard "github.com/hadiant/go-admin-dashboard/components/dashboard"
)

// MockData seeds deterministic analytics responses for tests or local demos.
type MockData struct {
	Overview dashboard.OverviewReport
	Chats    dashboard.ChatReport
	Images   dashboard.ImageReport
	Revenue  dashboard.RevenueReport
	// TrendSeed drives the generated chat trend when Chats.Trend is empty.
	TrendSeed uint64
}

// DefaultMockData returns the demo figures shown on a fresh install.
func DefaultMockData() MockData {
	ctx := context.Background()
	overview, _ := dashboard.DemoOverviewRepository{}.FetchOverview(ctx)
	chats, _ := dashboard.DemoChatRepository{}.FetchChatReport(ctx, dashboard.ChatQuery{})
	images, _ := dashboard.DemoImageRepository{}.FetchImageReport(ctx)
	revenue, _ := dashboard.DemoRevenueRepository{}.FetchRevenueReport(ctx)
	chats.Trend = dashboard.Series{}
	return MockData{
		Overview:  overview,
		Chats:     chats,
		Images:    images,
		Revenue:   revenue,
		TrendSeed: 2024,
	}
}

// MockClient implements Client using in-memory fixtures.
type MockClient struct {
	mu   sync.RWMutex
	data MockData
	now  func() time.Time
}

// NewMockClient builds a mock analytics client from the provided fixtures.
func NewMockClient(data MockData) *MockClient {
	return &MockClient{data: data, now: time.Now}
}

// SetData swaps the fixtures served by the client.
func (c *MockClient) SetData(data MockData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
}

// FetchOverview returns the configured overview.
func (c *MockClient) FetchOverview(context.Context) (dashboard.OverviewReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneOverview(c.data.Overview), nil
}

// FetchChats returns the configured chat report. Without a fixture trend a
// seeded trend covering query.Days is generated.
func (c *MockClient) FetchChats(_ context.Context, query dashboard.ChatQuery) (dashboard.ChatReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	report := c.data.Chats
	if len(report.Trend.Points) > 0 {
		report.Trend = cloneSeries(report.Trend)
		return report, nil
	}
	end := query.End
	if end.IsZero() {
		end = c.now()
	}
	report.Trend = dashboard.ChatTrend(end, query.Days, c.data.TrendSeed)
	return report, nil
}

// FetchImages returns the configured image report.
func (c *MockClient) FetchImages(context.Context) (dashboard.ImageReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	report := c.data.Images
	report.Styles = cloneSeries(report.Styles)
	return report, nil
}

// FetchRevenue returns the configured revenue report.
func (c *MockClient) FetchRevenue(context.Context) (dashboard.RevenueReport, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	report := c.data.Revenue
	report.Monthly = cloneSeries(report.Monthly)
	return report, nil
}

func cloneOverview(report dashboard.OverviewReport) dashboard.OverviewReport {
	report.ChatActivity = cloneSeries(report.ChatActivity)
	report.RevenueGrowth = cloneSeries(report.RevenueGrowth)
	report.PlanDistribution = append([]dashboard.SeriesPoint(nil), report.PlanDistribution...)
	return report
}

func cloneSeries(series dashboard.Series) dashboard.Series {
	series.Points = append([]dashboard.SeriesPoint(nil), series.Points...)
	return series
}
