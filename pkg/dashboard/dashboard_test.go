package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/hadiant/go-admin-dashboard/components/dashboard"
)

func TestFacadeResolvesPages(t *testing.T) {
	service := NewService(Options{})
	view, err := service.ResolvePage(context.Background(), AppState{Page: core.PageTenants})
	require.NoError(t, err)
	assert.Equal(t, core.PageTenants, view.Page)
	assert.Len(t, Navigation(core.PageTenants, "en"), 4)
}
