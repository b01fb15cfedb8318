// Package theme defines the color palettes shipped with violet.
package theme

import (
	"errors"
	"fmt"
)

// Theme validation errors.
var (
	ErrUnnamedTheme  = errors.New("theme has no name")
	ErrMissingTokens = errors.New("theme is missing mandatory color roles")
)

// Tokens defines the semantic color roles a theme must provide.
// Values are hex strings consumed by lipgloss.
type Tokens struct {
	Background string
	Surface    string
	Text       string
	TextMuted  string
	Border     string
	Primary    string
	Secondary  string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles a palette with a name. Themes are immutable once
// constructed; the kit references them by value.
type Theme struct {
	Name   string
	Dark   bool
	Tokens Tokens
}

// Validate reports whether the theme satisfies the shape the kit's
// theming subsystem expects.
func (t Theme) Validate() error {
	if t.Name == "" {
		return ErrUnnamedTheme
	}
	mandatory := map[string]string{
		"background": t.Tokens.Background,
		"surface":    t.Tokens.Surface,
		"text":       t.Tokens.Text,
		"border":     t.Tokens.Border,
		"primary":    t.Tokens.Primary,
	}
	for role, value := range mandatory {
		if value == "" {
			return fmt.Errorf("%w: %s (theme %s)", ErrMissingTokens, role, t.Name)
		}
	}
	return nil
}

// Builtin returns the palettes shipped with violet, keyed by name.
// The map is rebuilt on every call so callers may mutate their copy.
func Builtin() map[string]Theme {
	return map[string]Theme{
		Purple.Name:     Purple,
		PurpleDark.Name: PurpleDark,
	}
}
