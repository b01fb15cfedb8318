// Package app assembles the violet framework instance consumed by the
// demo binary: full component and directive registries, the purple
// theme pair, and the global component defaults.
package app

import (
	"github.com/violetkit/violet/internal/kit"
	"github.com/violetkit/violet/internal/kit/components"
	"github.com/violetkit/violet/internal/kit/directives"
	"github.com/violetkit/violet/internal/theme"
)

// Options returns the canonical framework configuration. The Button
// entry is intentionally present and empty.
func Options() kit.Options {
	return kit.Options{
		Components: components.Registry(),
		Directives: directives.Registry(),
		Theme: kit.ThemeOptions{
			Default: theme.Purple.Name,
			Themes: map[string]theme.Theme{
				theme.Purple.Name:     theme.Purple,
				theme.PurpleDark.Name: theme.PurpleDark,
			},
		},
		Defaults: kit.Defaults{
			components.TypeButton:    {},
			components.TypeCard:      {"rounded": "lg"},
			components.TypeTextField: {"rounded": "lg"},
			components.TypeTooltip:   {"location": "top"},
		},
	}
}

// New constructs the configured kit instance.
func New() (*kit.Kit, error) {
	return kit.New(Options())
}
