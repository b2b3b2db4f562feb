// Package dashboard re-exports the admin dashboard service for embedding
// applications that do not want to import the components tree directly.
package dashboard

import (
	core "github.com/hadiant/go-admin-dashboard/components/dashboard"
)

// Service exposes the underlying components/dashboard.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// AppState is the navigation state a page is resolved from.
type AppState = core.AppState

// PageView is a resolved page.
type PageView = core.PageView

// Page identifies one of the admin pages.
type Page = core.Page

// NavItem is a sidebar entry.
type NavItem = core.NavItem

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// Navigation proxies to the sidebar builder.
func Navigation(active Page, locale string) []NavItem {
	return core.Navigation(active, locale)
}
