package gorouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterValidatesConfig(t *testing.T) {
	err := Register(Config[struct{}]{})
	if err == nil {
		t.Fatalf("expected error when router/controller missing")
	}
}

func TestDefaultRouteConfig(t *testing.T) {
	routes := DefaultRouteConfig(RouteConfig{Tenants: "/tenants.json"})
	assert.Equal(t, "/:page", routes.Page)
	assert.Equal(t, "/:page/_payload", routes.Payload)
	assert.Equal(t, "/tenants.json", routes.Tenants)
	assert.Equal(t, "/settings", routes.Settings)
	assert.Equal(t, "/profile", routes.Profile)
	assert.Equal(t, "/ws/notices", routes.WebSocket)
	assert.Equal(t, "/static", routes.Assets)
}

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		name                  string
		locals, query, header string
		want                  string
	}{
		{name: "locals win", locals: "id", query: "en", header: "en-US", want: "id"},
		{name: "query before header", query: "EN", header: "id-ID", want: "en"},
		{name: "header", header: "id-ID,id;q=0.9", want: "id-id"},
		{name: "none", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveLocale(tc.locals, tc.query, tc.header))
		})
	}
}
