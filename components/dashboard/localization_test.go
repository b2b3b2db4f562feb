package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocalizedValue(t *testing.T) {
	values := map[string]string{"default": "Settings", "id": "Pengaturan"}
	assert.Equal(t, "Pengaturan", ResolveLocalizedValue(values, "id", "x"))
	assert.Equal(t, "Pengaturan", ResolveLocalizedValue(values, "ID-id", "x"))
	assert.Equal(t, "Pengaturan", ResolveLocalizedValue(values, "id_ID", "x"))
	assert.Equal(t, "Settings", ResolveLocalizedValue(values, "fr", "x"))
	assert.Equal(t, "Settings", ResolveLocalizedValue(values, "", "x"))
	assert.Equal(t, "x", ResolveLocalizedValue(nil, "id", "x"))
}

func TestStaticTranslations(t *testing.T) {
	translations := DefaultTranslations()
	text, err := translations.Translate(context.Background(), "widget.overview.active_suffix", "id-ID", map[string]any{"count": 6})
	require.NoError(t, err)
	assert.Equal(t, "6 aktif", text)

	_, err = translations.Translate(context.Background(), "widget.overview.active_suffix", "en", nil)
	require.Error(t, err)

	assert.Equal(t, "6 active", translateOrFallback(context.Background(), translations, "widget.overview.active_suffix", "en", "{count} active", map[string]any{"count": 6}))
	assert.Equal(t, "missing.key", translateOrFallback(context.Background(), nil, "missing.key", "en", "", nil))
}

func TestDefinitionNameForLocale(t *testing.T) {
	def, ok := NewRegistry().Definition(WidgetPlans)
	require.True(t, ok)
	assert.Equal(t, "Subscription Plans", def.NameForLocale("en"))
	assert.Equal(t, "Paket Langganan", def.NameForLocale("id"))
}
