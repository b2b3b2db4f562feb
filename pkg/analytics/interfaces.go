package analytics

import (
	"context"

	dashboard "github.com/hadiant/go-admin-dashboard/components/dashboard"
)

// OverviewClient fetches the platform headline figures.
type OverviewClient interface {
	FetchOverview(ctx context.Context) (dashboard.OverviewReport, error)
}

// ChatClient fetches chat traffic reports.
type ChatClient interface {
	FetchChats(ctx context.Context, query dashboard.ChatQuery) (dashboard.ChatReport, error)
}

// ImageClient fetches decoration image generation reports.
type ImageClient interface {
	FetchImages(ctx context.Context) (dashboard.ImageReport, error)
}

// RevenueClient fetches subscription revenue reports.
type RevenueClient interface {
	FetchRevenue(ctx context.Context) (dashboard.RevenueReport, error)
}

// Client is a convenience union for services that implement all analytics calls.
type Client interface {
	OverviewClient
	ChatClient
	ImageClient
	RevenueClient
}
