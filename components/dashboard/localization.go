package dashboard

import (
	"context"
	"strings"
)

// TranslationService translates keys for a locale. Providers fall back to
// their built-in English strings when it is nil or fails.
type TranslationService interface {
	Translate(ctx context.Context, key, locale string, args map[string]any) (string, error)
}

// ResolveLocalizedValue selects the best translation for locale and falls
// back to the "default" entry, then to fallback. "id-ID" falls back to "id".
func ResolveLocalizedValue(values map[string]string, locale, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	for _, candidate := range localeCandidates(locale) {
		for key, value := range values {
			if strings.EqualFold(key, candidate) && value != "" {
				return value
			}
		}
	}
	return fallback
}

// NameForLocale returns the widget name for locale.
func (def WidgetDefinition) NameForLocale(locale string) string {
	return ResolveLocalizedValue(def.NameLocalized, locale, def.Name)
}

// DescriptionForLocale returns the widget description for locale.
func (def WidgetDefinition) DescriptionForLocale(locale string) string {
	return ResolveLocalizedValue(def.DescriptionLocalized, locale, def.Description)
}

// StaticTranslations is a TranslationService over an in-memory
// locale -> key -> text table. Args replace "{name}" placeholders.
type StaticTranslations map[string]map[string]string

// Translate implements TranslationService.
func (t StaticTranslations) Translate(_ context.Context, key, locale string, args map[string]any) (string, error) {
	for _, candidate := range localeCandidates(locale) {
		table, ok := t[candidate]
		if !ok {
			continue
		}
		if text, ok := table[key]; ok {
			return interpolate(text, args), nil
		}
	}
	return "", errTranslationMissing
}

// DefaultTranslations carries the Indonesian strings used by the widgets.
func DefaultTranslations() StaticTranslations {
	return StaticTranslations{
		"id": {
			"widget.overview.total_tenants":  "Total Klien",
			"widget.overview.chats_today":    "Chat Hari Ini",
			"widget.overview.images_today":   "Gambar Hari Ini",
			"widget.overview.mrr":            "MRR",
			"widget.overview.active_suffix":  "{count} aktif",
			"widget.recent_tenants.empty":    "Belum ada klien",
			"widget.tenant_directory.empty":  "Tidak ada klien yang cocok dengan filter",
			"widget.tenant_directory.search": "Cari nama bisnis",
			"widget.chat.peak_hour":          "Jam Sibuk",
			"widget.chat.daily_average":      "Rata-rata Harian",
			"widget.image.credits":           "Kredit Terpakai",
			"widget.revenue.churn":           "Tingkat Churn",
			"widget.plans.unlimited":         "Tanpa batas",
			"notice.settings_saved":          "Pengaturan tersimpan!",
			"notice.profile_updated":         "Profil diperbarui!",
		},
	}
}

func interpolate(text string, args map[string]any) string {
	if len(args) == 0 || !strings.Contains(text, "{") {
		return text
	}
	pairs := make([]string, 0, len(args)*2)
	for key, value := range args {
		pairs = append(pairs, "{"+key+"}", toString(value))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return []string{"default"}
	}
	candidates := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		candidates = append(candidates, locale[:idx])
	}
	return append(candidates, "default")
}

func normalizeLocale(locale string) string {
	return strings.TrimSpace(strings.ToLower(locale))
}

func translateOrFallback(ctx context.Context, svc TranslationService, key, locale, fallback string, params map[string]any) string {
	if svc != nil {
		if translated, err := svc.Translate(ctx, key, locale, params); err == nil && translated != "" {
			return translated
		}
	}
	if fallback != "" {
		return interpolate(fallback, params)
	}
	return key
}
