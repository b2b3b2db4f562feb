package goadmin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	dashboardpkg "github.com/hadiant/go-admin-dashboard/pkg/dashboard"
)

// MenuBuilder ensures dashboard entries exist within the admin navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures dashboard link metadata.
type MenuItem struct {
	Label    string `json:"label"`
	Route    string `json:"route"`
	Icon     string `json:"icon"`
	Position int    `json:"position"`
}

// Config wires dashboard service + feature flags into an admin shell.
type Config struct {
	EnableDashboard bool
	MenuCode        string
	MenuBuilder     MenuBuilder
	Service         *dashboardpkg.Service
	Locale          string
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// New creates an Admin helper that can seed dashboard menus.
func New(cfg Config) (*Admin, error) {
	if cfg.EnableDashboard && cfg.Service == nil {
		return nil, errors.New("goadmin: dashboard service is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	return &Admin{cfg: cfg}, nil
}

// Dashboard exposes the configured dashboard service when enabled.
func (a *Admin) Dashboard() *dashboardpkg.Service {
	if !a.cfg.EnableDashboard {
		return nil
	}
	return a.cfg.Service
}

// MenuItems lists one entry per admin page in sidebar order.
func (a *Admin) MenuItems() []MenuItem {
	nav := dashboardpkg.Navigation("", a.cfg.Locale)
	items := make([]MenuItem, 0, len(nav))
	for _, entry := range nav {
		items = append(items, MenuItem{
			Label:    entry.Label,
			Route:    entry.Route,
			Icon:     entry.Icon,
			Position: entry.Position,
		})
	}
	return items
}

// Bootstrap seeds a menu entry for every admin page when dashboard support
// is enabled. Failures are collected so one bad entry does not hide others.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnableDashboard || a.cfg.MenuBuilder == nil {
		return nil
	}
	var errs []error
	for _, item := range a.MenuItems() {
		if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, item); err != nil {
			errs = append(errs, fmt.Errorf("goadmin: menu item %s: %w", item.Route, err))
		}
	}
	return errors.Join(errs...)
}

// MemoryMenu is a MenuBuilder that keeps items in memory, keyed by route.
type MemoryMenu struct {
	mu    sync.RWMutex
	menus map[string]map[string]MenuItem
}

// NewMemoryMenu returns an empty MemoryMenu.
func NewMemoryMenu() *MemoryMenu {
	return &MemoryMenu{menus: map[string]map[string]MenuItem{}}
}

// EnsureMenuItem inserts or replaces item under menuCode.
func (m *MemoryMenu) EnsureMenuItem(_ context.Context, menuCode string, item MenuItem) error {
	if item.Route == "" {
		return errors.New("goadmin: menu item route is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.menus[menuCode] == nil {
		m.menus[menuCode] = map[string]MenuItem{}
	}
	m.menus[menuCode][item.Route] = item
	return nil
}

// Items returns the items of menuCode ordered by position.
func (m *MemoryMenu) Items(menuCode string) []MenuItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]MenuItem, 0, len(m.menus[menuCode]))
	for _, item := range m.menus[menuCode] {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items
}
