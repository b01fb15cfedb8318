package kit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/violetkit/violet/internal/theme"
)

func testOptions() Options {
	return Options{
		Components: map[string]Factory{
			"Label": func(k *Kit, props Props) Widget {
				return staticWidget(props.String("text", ""))
			},
		},
		Directives: map[string]Directive{
			"upper": func(content string, props Props) string {
				return content + "!"
			},
		},
		Theme: ThemeOptions{
			Default: theme.Purple.Name,
			Themes:  theme.Builtin(),
		},
		Defaults: Defaults{
			"Label": {"text": "default"},
			"Empty": {},
		},
	}
}

type staticWidget string

func (w staticWidget) View() string { return string(w) }

func TestNewRequiresThemes(t *testing.T) {
	opts := testOptions()
	opts.Theme.Themes = nil
	_, err := New(opts)
	require.ErrorIs(t, err, ErrNoThemes)
}

func TestNewRequiresResolvableDefaultTheme(t *testing.T) {
	opts := testOptions()
	opts.Theme.Default = "NoSuchTheme"
	_, err := New(opts)
	require.ErrorIs(t, err, ErrUnknownTheme)
	require.ErrorContains(t, err, "NoSuchTheme")
}

func TestNewRejectsMalformedTheme(t *testing.T) {
	broken := theme.Purple
	broken.Tokens.Background = ""

	opts := testOptions()
	opts.Theme.Themes["Broken"] = broken
	_, err := New(opts)
	require.ErrorIs(t, err, ErrMalformedTheme)
}

func TestNewCopiesOptionMaps(t *testing.T) {
	opts := testOptions()
	k, err := New(opts)
	require.NoError(t, err)

	opts.Defaults["Label"]["text"] = "mutated"
	delete(opts.Theme.Themes, theme.PurpleDark.Name)

	require.Equal(t, Props{"text": "default"}, k.PropsFor("Label", nil))
	require.Len(t, k.Themes(), 2)
}

func TestDefaultsForPreservesEmptyEntries(t *testing.T) {
	k, err := New(testOptions())
	require.NoError(t, err)

	props, ok := k.DefaultsFor("Empty")
	require.True(t, ok)
	require.Empty(t, props)

	_, ok = k.DefaultsFor("Unregistered")
	require.False(t, ok)
}

func TestPropsForLocalOverridesWin(t *testing.T) {
	k, err := New(testOptions())
	require.NoError(t, err)

	merged := k.PropsFor("Label", Props{"text": "local", "extra": 1})
	require.Equal(t, Props{"text": "local", "extra": 1}, merged)

	// No defaults entry: local props pass through.
	require.Equal(t, Props{"a": true}, k.PropsFor("Unregistered", Props{"a": true}))
}

func TestRenderMergesDefaults(t *testing.T) {
	k, err := New(testOptions())
	require.NoError(t, err)

	widget, err := k.Render("Label", nil)
	require.NoError(t, err)
	require.Equal(t, "default", widget.View())

	widget, err = k.Render("Label", Props{"text": "override"})
	require.NoError(t, err)
	require.Equal(t, "override", widget.View())

	_, err = k.Render("Missing", nil)
	require.ErrorIs(t, err, ErrUnknownComponent)
}

func TestApplyDirective(t *testing.T) {
	k, err := New(testOptions())
	require.NoError(t, err)

	out, err := k.Apply("upper", "hi", nil)
	require.NoError(t, err)
	require.Equal(t, "hi!", out)

	_, err = k.Apply("missing", "hi", nil)
	require.ErrorIs(t, err, ErrUnknownDirective)
}

func TestSetTheme(t *testing.T) {
	k, err := New(testOptions())
	require.NoError(t, err)
	require.Equal(t, theme.Purple.Name, k.CurrentTheme().Name)

	require.NoError(t, k.SetTheme(theme.PurpleDark.Name))
	require.Equal(t, theme.PurpleDark.Name, k.CurrentTheme().Name)
	require.Equal(t, theme.PurpleDark, k.Styles().Theme)

	err = k.SetTheme("NoSuchTheme")
	require.ErrorIs(t, err, ErrUnknownTheme)
	require.Equal(t, theme.PurpleDark.Name, k.CurrentTheme().Name)
}

func TestSortedListings(t *testing.T) {
	k, err := New(testOptions())
	require.NoError(t, err)

	require.Equal(t, []string{"Label"}, k.Components())
	require.Equal(t, []string{"upper"}, k.Directives())
	require.Equal(t, []string{theme.Purple.Name, theme.PurpleDark.Name}, k.ThemeNames())
}

func TestInstancesAreIndependent(t *testing.T) {
	first, err := New(testOptions())
	require.NoError(t, err)
	second, err := New(testOptions())
	require.NoError(t, err)

	require.NotEqual(t, first.ID(), second.ID())
	require.Equal(t, first.Defaults(), second.Defaults())
	require.Equal(t, first.Themes(), second.Themes())
	require.Equal(t, first.CurrentTheme(), second.CurrentTheme())

	require.NoError(t, first.SetTheme(theme.PurpleDark.Name))
	require.Equal(t, theme.Purple.Name, second.CurrentTheme().Name)
}
