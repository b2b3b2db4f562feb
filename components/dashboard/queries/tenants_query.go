package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

type tenantService interface {
	FilterTenants(ctx context.Context, criteria tenants.Criteria) (tenants.View, error)
}

// TenantsQuery filters the tenant directory.
type TenantsQuery struct {
	service tenantService
}

// NewTenantsQuery builds the query.
func NewTenantsQuery(service tenantService) *TenantsQuery {
	return &TenantsQuery{service: service}
}

var _ gocommand.Querier[tenants.Criteria, tenants.View] = (*TenantsQuery)(nil)

// Query returns the filtered view.
func (q *TenantsQuery) Query(ctx context.Context, criteria tenants.Criteria) (tenants.View, error) {
	return q.service.FilterTenants(ctx, criteria)
}
