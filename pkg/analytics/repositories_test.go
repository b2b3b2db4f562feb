package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboard "github.com/hadiant/go-admin-dashboard/components/dashboard"
)

func TestRepositoriesDelegateToClient(t *testing.T) {
	mock := NewMockClient(MockData{
		Overview: dashboard.OverviewReport{TotalTenants: 3, PlanDistribution: []dashboard.SeriesPoint{{Label: "Starter", Value: 3}}},
		Chats:    dashboard.ChatReport{TotalChats: 10, Trend: dashboard.Series{Points: []dashboard.SeriesPoint{{Label: "d1", Value: 10}}}},
		Images:   dashboard.ImageReport{TotalGenerated: 4},
		Revenue:  dashboard.RevenueReport{MRR: 1000},
	})
	ctx := context.Background()

	if report, err := NewOverviewRepository(mock).FetchOverview(ctx); err != nil || report.TotalTenants != 3 {
		t.Fatalf("overview repo returned %v, %v", report, err)
	}
	if report, err := NewChatRepository(mock).FetchChatReport(ctx, dashboard.ChatQuery{Days: 7}); err != nil || len(report.Trend.Points) != 1 {
		t.Fatalf("chat repo returned %v, %v", report, err)
	}
	if report, err := NewImageRepository(mock).FetchImageReport(ctx); err != nil || report.TotalGenerated != 4 {
		t.Fatalf("image repo returned %v, %v", report, err)
	}
	if report, err := NewRevenueRepository(mock).FetchRevenueReport(ctx); err != nil || report.MRR != 1000 {
		t.Fatalf("revenue repo returned %v, %v", report, err)
	}
}

func TestMockClientGeneratesSeededTrend(t *testing.T) {
	mock := NewMockClient(DefaultMockData())
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	first, err := mock.FetchChats(context.Background(), dashboard.ChatQuery{Days: 14, End: end})
	require.NoError(t, err)
	second, err := mock.FetchChats(context.Background(), dashboard.ChatQuery{Days: 14, End: end})
	require.NoError(t, err)

	assert.Len(t, first.Trend.Points, 14)
	assert.Equal(t, first.Trend, second.Trend)
	assert.Equal(t, 28934, first.TotalChats)
	assert.Equal(t, "2024-06-30", first.Trend.Points[13].Label)
}

func TestMockClientReturnsCopies(t *testing.T) {
	mock := NewMockClient(DefaultMockData())
	report, err := mock.FetchOverview(context.Background())
	require.NoError(t, err)
	report.ChatActivity.Points[0].Value = 0
	report.PlanDistribution[0].Value = 0

	again, err := mock.FetchOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4200.0, again.ChatActivity.Points[0].Value)
	assert.Equal(t, 18.0, again.PlanDistribution[0].Value)
}

func TestMockClientSetData(t *testing.T) {
	mock := NewMockClient(DefaultMockData())
	mock.SetData(MockData{Revenue: dashboard.RevenueReport{MRR: 1}})
	report, err := mock.FetchRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.MRR)
}

func TestProviderDepsWiresMockIntoDashboard(t *testing.T) {
	data := DefaultMockData()
	data.Overview.TotalTenants = 99
	deps := ProviderDeps(NewMockClient(data), dashboard.ProviderDeps{})
	service := dashboard.NewService(dashboard.Options{Providers: dashboard.NewRegistryWith(deps)})

	view, err := service.ResolvePage(context.Background(), dashboard.AppState{Page: dashboard.PageDashboard})
	require.NoError(t, err)
	cards := view.Widgets[0].Data["cards"].([]map[string]any)
	assert.Equal(t, "99", cards[0]["value"])
}
