package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/violetkit/violet/internal/kit"
	"github.com/violetkit/violet/internal/theme"
)

func TestNewAppliesLiteralDefaults(t *testing.T) {
	k, err := New()
	require.NoError(t, err)

	require.Equal(t, kit.Defaults{
		"Button":    {},
		"Card":      {"rounded": "lg"},
		"TextField": {"rounded": "lg"},
		"Tooltip":   {"location": "top"},
	}, k.Defaults())
}

func TestNewButtonEntryPresentButEmpty(t *testing.T) {
	k, err := New()
	require.NoError(t, err)

	props, ok := k.DefaultsFor("Button")
	require.True(t, ok, "Button entry must exist")
	require.Empty(t, props)
}

func TestNewRegistersPurpleThemePair(t *testing.T) {
	k, err := New()
	require.NoError(t, err)

	themes := k.Themes()
	require.Len(t, themes, 2)
	require.Equal(t, theme.Purple, themes["PurpleTheme"])
	require.Equal(t, theme.PurpleDark, themes["PurpleThemeDark"])
	require.Equal(t, "PurpleTheme", k.CurrentTheme().Name)
}

func TestNewIsIdempotent(t *testing.T) {
	first, err := New()
	require.NoError(t, err)
	second, err := New()
	require.NoError(t, err)

	require.Equal(t, first.Defaults(), second.Defaults())
	require.Equal(t, first.Themes(), second.Themes())
	require.Equal(t, first.CurrentTheme(), second.CurrentTheme())
	require.Equal(t, first.Components(), second.Components())
	require.Equal(t, first.Directives(), second.Directives())
}

func TestNewFailsWhenDefaultThemeMissing(t *testing.T) {
	opts := Options()
	delete(opts.Theme.Themes, "PurpleTheme")

	_, err := kit.New(opts)
	require.ErrorIs(t, err, kit.ErrUnknownTheme)
}

func TestGalleryRendersEveryComponent(t *testing.T) {
	k, err := New()
	require.NoError(t, err)

	gallery := NewGallery(k)
	view := gallery.View()
	require.Contains(t, view, "violet gallery")
	require.Contains(t, view, "Submit")
	require.Contains(t, view, "Card")
	require.Contains(t, view, "sends the form")
}

func TestGalleryThemeCycle(t *testing.T) {
	k, err := New()
	require.NoError(t, err)

	gallery := NewGallery(k)
	require.Equal(t, "PurpleThemeDark", gallery.nextTheme())

	require.NoError(t, k.SetTheme("PurpleThemeDark"))
	require.Equal(t, "PurpleTheme", gallery.nextTheme())
}
