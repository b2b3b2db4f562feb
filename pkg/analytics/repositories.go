package analytics

import (
	"context"

	dashboard "github.com/hadiant/go-admin-dashboard/components/dashboard"
)

// NewOverviewRepository adapts an analytics client into the dashboard overview repository.
func NewOverviewRepository(client OverviewClient) dashboard.OverviewRepository {
	return &overviewRepository{client: client}
}

type overviewRepository struct {
	client OverviewClient
}

func (r *overviewRepository) FetchOverview(ctx context.Context) (dashboard.OverviewReport, error) {
	return r.client.FetchOverview(ctx)
}

// NewChatRepository adapts the analytics client for the chat analytics tab.
func NewChatRepository(client ChatClient) dashboard.ChatReportRepository {
	return &chatRepository{client: client}
}

type chatRepository struct {
	client ChatClient
}

func (r *chatRepository) FetchChatReport(ctx context.Context, query dashboard.ChatQuery) (dashboard.ChatReport, error) {
	return r.client.FetchChats(ctx, query)
}

// NewImageRepository adapts the analytics client for the image analytics tab.
func NewImageRepository(client ImageClient) dashboard.ImageReportRepository {
	return &imageRepository{client: client}
}

type imageRepository struct {
	client ImageClient
}

func (r *imageRepository) FetchImageReport(ctx context.Context) (dashboard.ImageReport, error) {
	return r.client.FetchImages(ctx)
}

// NewRevenueRepository adapts the analytics client for revenue widgets.
func NewRevenueRepository(client RevenueClient) dashboard.RevenueReportRepository {
	return &revenueRepository{client: client}
}

type revenueRepository struct {
	client RevenueClient
}

func (r *revenueRepository) FetchRevenueReport(ctx context.Context) (dashboard.RevenueReport, error) {
	return r.client.FetchRevenue(ctx)
}

// ProviderDeps wires every analytics repository of client into dashboard provider deps.
func ProviderDeps(client Client, deps dashboard.ProviderDeps) dashboard.ProviderDeps {
	deps.Overview = NewOverviewRepository(client)
	deps.Chats = NewChatRepository(client)
	deps.Images = NewImageRepository(client)
	deps.Revenue = NewRevenueRepository(client)
	return deps
}
