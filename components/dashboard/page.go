package dashboard

import (
	"strings"
	"unicode"

	"github.com/hadiant/go-admin-dashboard/pkg/tenants"
)

// Page identifies one of the admin screens.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageTenants   Page = "tenants"
	PageAnalytics Page = "analytics"
	PageSettings  Page = "settings"
)

// Tab is a sub-view of a page.
type Tab struct {
	Code           string            `json:"code"`
	Label          string            `json:"label"`
	LabelLocalized map[string]string `json:"-"`
}

type pageMeta struct {
	title   map[string]string
	caption map[string]string
	icon    string
	tabs    []Tab
}

var pageOrder = []Page{PageDashboard, PageTenants, PageAnalytics, PageSettings}

var pages = map[Page]pageMeta{
	PageDashboard: {
		title:   map[string]string{"default": "Dashboard", "id": "Dasbor"},
		caption: map[string]string{"default": "HADIANT Platform performance overview", "id": "Overview performa HADIANT Platform"},
		icon:    "chart-bar",
	},
	PageTenants: {
		title:   map[string]string{"default": "Tenants", "id": "Klien"},
		caption: map[string]string{"default": "Manage all Wedding Organizer clients", "id": "Manage semua Wedding Organizer clients"},
		icon:    "building",
	},
	PageAnalytics: {
		title:   map[string]string{"default": "Analytics", "id": "Analitik"},
		caption: map[string]string{"default": "Deep dive into platform metrics", "id": "Analisis mendalam metrik platform"},
		icon:    "chart-line",
		tabs: []Tab{
			{Code: "chat", Label: "Chat Analytics", LabelLocalized: map[string]string{"id": "Analitik Chat"}},
			{Code: "image", Label: "Image Analytics", LabelLocalized: map[string]string{"id": "Analitik Gambar"}},
			{Code: "revenue", Label: "Revenue", LabelLocalized: map[string]string{"id": "Pendapatan"}},
		},
	},
	PageSettings: {
		title:   map[string]string{"default": "Settings", "id": "Pengaturan"},
		caption: map[string]string{"default": "Platform configuration", "id": "Konfigurasi platform"},
		icon:    "settings",
		tabs: []Tab{
			{Code: "api_keys", Label: "API Keys", LabelLocalized: map[string]string{"id": "Kunci API"}},
			{Code: "plans", Label: "Plans", LabelLocalized: map[string]string{"id": "Paket"}},
			{Code: "profile", Label: "Profile", LabelLocalized: map[string]string{"id": "Profil"}},
		},
	},
}

// Pages returns every page in sidebar order.
func Pages() []Page {
	return append([]Page(nil), pageOrder...)
}

// ParsePage accepts a page code or a sidebar label such as "📊 Dashboard".
// Unknown values resolve to PageDashboard with ok=false.
func ParsePage(value string) (Page, bool) {
	value = strings.TrimFunc(value, func(r rune) bool { return !unicode.IsLetter(r) })
	candidate := Page(strings.ToLower(value))
	if _, ok := pages[candidate]; ok {
		return candidate, true
	}
	return PageDashboard, false
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	_, ok := pages[p]
	return ok
}

// Route is the HTML path of the page.
func (p Page) Route() string {
	return "/admin/" + string(p)
}

// Title returns the localized page title.
func (p Page) Title(locale string) string {
	return ResolveLocalizedValue(pages[p].title, locale, string(p))
}

// Caption returns the localized subtitle shown under the title.
func (p Page) Caption(locale string) string {
	return ResolveLocalizedValue(pages[p].caption, locale, "")
}

// Tabs returns the localized tabs of the page, if any.
func (p Page) Tabs(locale string) []Tab {
	meta := pages[p]
	if len(meta.tabs) == 0 {
		return nil
	}
	out := make([]Tab, len(meta.tabs))
	for i, tab := range meta.tabs {
		out[i] = Tab{Code: tab.Code, Label: ResolveLocalizedValue(tab.LabelLocalized, locale, tab.Label)}
	}
	return out
}

// ResolveTab returns tab when the page has it, otherwise the first tab.
// Pages without tabs always resolve to "".
func (p Page) ResolveTab(tab string) string {
	meta := pages[p]
	if len(meta.tabs) == 0 {
		return ""
	}
	tab = strings.ToLower(strings.TrimSpace(tab))
	for _, candidate := range meta.tabs {
		if candidate.Code == tab {
			return tab
		}
	}
	return meta.tabs[0].Code
}

// AppState is the explicit navigation state of a request.
type AppState struct {
	Page     Page             `json:"page"`
	Tab      string           `json:"tab,omitempty"`
	Criteria tenants.Criteria `json:"criteria"`
	Viewer   ViewerContext    `json:"viewer"`
}

// Normalize resolves unknown pages, tabs and filter values to their defaults.
func (s AppState) Normalize() AppState {
	if !s.Page.Valid() {
		s.Page, _ = ParsePage(string(s.Page))
	}
	s.Tab = s.Page.ResolveTab(s.Tab)
	s.Criteria = s.Criteria.Normalize()
	return s
}

// NavItem is a sidebar entry.
type NavItem struct {
	Page     Page   `json:"page"`
	Label    string `json:"label"`
	Route    string `json:"route"`
	Icon     string `json:"icon"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// Navigation returns the sidebar entries with active marked.
func Navigation(active Page, locale string) []NavItem {
	items := make([]NavItem, 0, len(pageOrder))
	for i, page := range pageOrder {
		items = append(items, NavItem{
			Page:     page,
			Label:    page.Title(locale),
			Route:    page.Route(),
			Icon:     pages[page].icon,
			Position: (i + 1) * 10,
			Active:   page == active,
		})
	}
	return items
}
