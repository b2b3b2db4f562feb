package settings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldKeyNormalisesSegments(t *testing.T) {
	assert.Equal(t, "stability_ai.api_key", FieldKey("Stability AI", "APIKey"))
	assert.Equal(t, "supabase.project_url", NormalizeKey("Supabase.ProjectURL"))
	assert.Equal(t, "groq.model", NormalizeKey(" groq.model "))
}

func TestParseDisplayMode(t *testing.T) {
	mode, ok := ParseDisplayMode(" Masked ")
	require.True(t, ok)
	assert.Equal(t, DisplayMasked, mode)

	_, ok = ParseDisplayMode("hidden")
	assert.False(t, ok)
}

func TestRenderMasksSecrets(t *testing.T) {
	values := DefaultValues()
	values["groq.api_key"] = "gsk_live_secret"

	views := Render(values, DefaultDisplayConfig())
	require.Len(t, views, 4)
	assert.Equal(t, "supabase", views[0].Code)
	assert.True(t, views[0].Expanded)

	fields := indexFields(views)
	assert.Equal(t, MaskPlaceholder, fields["groq.api_key"].Value)
	assert.Equal(t, DisplayMasked, fields["groq.api_key"].Mode)
	assert.Equal(t, MaskPlaceholder, fields["supabase.api_key"].Value)
	assert.Equal(t, "https://edcmmwadqnpwybflmgtx.supabase.co", fields["supabase.project_url"].Value)
	assert.Equal(t, "llama-3.3-70b-versatile", fields["groq.model"].Value)
}

func TestRenderHonoursPlaintextOverride(t *testing.T) {
	values := DefaultValues()
	values["waha.api_key"] = "waha-token"
	cfg := DefaultDisplayConfig().Merge(DisplayConfig{"waha.api_key": DisplayPlaintext, "waha.instance_url": DisplayMasked})

	fields := indexFields(Render(values, cfg))
	assert.Equal(t, "waha-token", fields["waha.api_key"].Value)
	assert.Equal(t, MaskPlaceholder, fields["waha.instance_url"].Value)
}

func TestDisplayConfigModeDefaults(t *testing.T) {
	var cfg DisplayConfig
	assert.Equal(t, DisplayMasked, cfg.Mode(Field{Key: "x.api_key", Secret: true}))
	assert.Equal(t, DisplayPlaintext, cfg.Mode(Field{Key: "x.url"}))
}

func TestDecodeDisplayConfig(t *testing.T) {
	cfg, err := DecodeDisplayConfig(strings.NewReader(`
fields:
  Stability AI.APIKey: plaintext
  supabase.project_url: MASKED
`))
	require.NoError(t, err)
	assert.Equal(t, DisplayConfig{
		"stability_ai.api_key": DisplayPlaintext,
		"supabase.project_url": DisplayMasked,
	}, cfg)

	_, err = DecodeDisplayConfig(strings.NewReader("fields:\n  stripe.api_key: masked\n  groq.model: blurred\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "stripe.api_key"`)
	assert.Contains(t, err.Error(), `unknown display mode "blurred"`)

	empty, err := DecodeDisplayConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStoreSaveMergesAndKeepsMaskedValues(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, map[string]string{
		"groq.api_key": "gsk_first",
		"groq.model":   "mixtral-8x7b-32768",
	}))
	require.NoError(t, store.Save(ctx, map[string]string{
		"groq.api_key":         MaskPlaceholder,
		"supabase.project_url": "https://ignored.example.com",
	}))

	values := store.Values(ctx)
	assert.Equal(t, "gsk_first", values["groq.api_key"])
	assert.Equal(t, "mixtral-8x7b-32768", values["groq.model"])
	assert.Equal(t, "https://edcmmwadqnpwybflmgtx.supabase.co", values["supabase.project_url"])
}

func TestStoreSaveRejectsInvalidValues(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := store.Save(ctx, map[string]string{"groq.model": "gpt-4"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	err = store.Save(ctx, map[string]string{"openai.api_key": "sk"})
	require.Error(t, err)

	err = store.Save(ctx, map[string]string{"waha.instance_url": "not a url"})
	require.Error(t, err)

	assert.Equal(t, DefaultValues(), store.Values(ctx))
}

func TestStoreUpdateProfile(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	assert.Equal(t, "MH", store.Profile(ctx).Initials())

	require.NoError(t, store.UpdateProfile(ctx, Profile{FullName: " Dewi Lestari ", Email: "dewi@hadiant.ai"}))
	assert.Equal(t, Profile{FullName: "Dewi Lestari", Email: "dewi@hadiant.ai"}, store.Profile(ctx))

	err := store.UpdateProfile(ctx, Profile{FullName: "", Email: "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, "Dewi Lestari", store.Profile(ctx).FullName)
}

func indexFields(views []IntegrationView) map[string]FieldView {
	out := map[string]FieldView{}
	for _, view := range views {
		for _, field := range view.Fields {
			out[field.Key] = field
		}
	}
	return out
}

func TestProfileInitialsDecodeRunes(t *testing.T) {
	cases := map[string]string{
		"Émile Zola":        "ÉZ",
		"ñoño":              "Ñ",
		"Dewi Ayu Lestari":  "DA",
		"   ":               "",
		"łukasz ćwik extra": "ŁĆ",
	}
	for name, want := range cases {
		got := Profile{FullName: name}.Initials()
		assert.Equal(t, want, got, "initials of %q", name)
		assert.True(t, utf8.ValidString(got), "initials of %q", name)
	}
}
