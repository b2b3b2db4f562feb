package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/hadiant/go-admin-dashboard/components/dashboard"
)

type pageService interface {
	ResolvePage(ctx context.Context, state dashboard.AppState) (dashboard.PageView, error)
}

// PageQuery resolves a page for the given navigation state.
type PageQuery struct {
	service pageService
}

// NewPageQuery builds the query.
func NewPageQuery(service pageService) *PageQuery {
	return &PageQuery{service: service}
}

var _ gocommand.Querier[dashboard.AppState, dashboard.PageView] = (*PageQuery)(nil)

// Query resolves the page view.
func (q *PageQuery) Query(ctx context.Context, state dashboard.AppState) (dashboard.PageView, error) {
	return q.service.ResolvePage(ctx, state)
}
