// Package kit implements the violet component framework: a configured
// bundle of component factories, directives, named themes, and global
// per-component-type default props.
package kit

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/violetkit/violet/internal/logging"
	"github.com/violetkit/violet/internal/theme"
)

// Kit construction and lookup errors.
var (
	ErrNoThemes         = errors.New("no themes configured")
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrMalformedTheme   = errors.New("malformed theme")
	ErrUnknownComponent = errors.New("unknown component")
	ErrUnknownDirective = errors.New("unknown directive")
)

// ThemeOptions configures the theming subsystem: which palettes are
// registered and which one is active at startup.
type ThemeOptions struct {
	// Default names the theme that is active after construction. It
	// must be a key of Themes.
	Default string

	// Themes registers the switchable palettes by name.
	Themes map[string]theme.Theme
}

// Options is the aggregate configuration handed to New. It is read
// once during construction; later mutation of the maps by the caller
// does not affect the kit.
type Options struct {
	Components map[string]Factory
	Directives map[string]Directive
	Theme      ThemeOptions
	Defaults   Defaults
}

// Kit is one configured framework instance. It is built once at
// application startup and is safe for concurrent reads; the active
// theme may be switched at runtime with SetTheme.
type Kit struct {
	id         string
	components map[string]Factory
	directives map[string]Directive
	themes     map[string]theme.Theme
	defaults   Defaults
	logger     zerolog.Logger

	mu      sync.RWMutex
	current string
	styles  Styles
}

// New constructs a kit from opts. It fails when no themes are
// registered, when a registered theme is malformed, or when the
// default theme name does not resolve to a registered theme.
func New(opts Options) (*Kit, error) {
	if len(opts.Theme.Themes) == 0 {
		return nil, ErrNoThemes
	}

	themes := make(map[string]theme.Theme, len(opts.Theme.Themes))
	for name, t := range opts.Theme.Themes {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedTheme, err)
		}
		themes[name] = t
	}

	active, ok := themes[opts.Theme.Default]
	if !ok {
		return nil, fmt.Errorf("%w: default theme %q is not registered", ErrUnknownTheme, opts.Theme.Default)
	}

	components := make(map[string]Factory, len(opts.Components))
	for name, factory := range opts.Components {
		components[name] = factory
	}
	directives := make(map[string]Directive, len(opts.Directives))
	for name, directive := range opts.Directives {
		directives[name] = directive
	}

	k := &Kit{
		id:         uuid.NewString(),
		components: components,
		directives: directives,
		themes:     themes,
		defaults:   opts.Defaults.clone(),
		logger:     logging.Component("kit"),
		current:    opts.Theme.Default,
		styles:     BuildStyles(active),
	}

	k.logger.Debug().
		Str("instance_id", k.id).
		Str("theme", k.current).
		Int("components", len(components)).
		Int("directives", len(directives)).
		Msg("kit configured")

	return k, nil
}

// ID returns the instance identifier assigned at construction.
func (k *Kit) ID() string {
	return k.id
}

// DefaultsFor returns the global default props registered for a
// component type, and whether an entry exists at all. The returned
// map is a copy.
func (k *Kit) DefaultsFor(component string) (Props, bool) {
	props, ok := k.defaults[component]
	if !ok {
		return nil, false
	}
	return props.clone(), true
}

// Defaults returns a copy of the full defaults map.
func (k *Kit) Defaults() Defaults {
	return k.defaults.clone()
}

// PropsFor merges the global defaults for a component type with local
// instance props. Local values win.
func (k *Kit) PropsFor(component string, local Props) Props {
	return k.defaults[component].merge(local)
}

// Render instantiates a component by type name with local props
// layered over the global defaults for that type.
func (k *Kit) Render(component string, local Props) (Widget, error) {
	factory, ok := k.components[component]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}
	return factory(k, k.PropsFor(component, local)), nil
}

// Apply runs a named directive over already-rendered content.
func (k *Kit) Apply(directive, content string, props Props) (string, error) {
	transform, ok := k.directives[directive]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDirective, directive)
	}
	return transform(content, props), nil
}

// Components lists registered component type names, sorted.
func (k *Kit) Components() []string {
	return sortedKeys(k.components)
}

// Directives lists registered directive names, sorted.
func (k *Kit) Directives() []string {
	return sortedKeys(k.directives)
}

// Themes returns a copy of the registered themes by name.
func (k *Kit) Themes() map[string]theme.Theme {
	out := make(map[string]theme.Theme, len(k.themes))
	for name, t := range k.themes {
		out[name] = t
	}
	return out
}

// ThemeNames lists registered theme names, sorted.
func (k *Kit) ThemeNames() []string {
	return sortedKeys(k.themes)
}

// CurrentTheme returns the active theme.
func (k *Kit) CurrentTheme() theme.Theme {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.themes[k.current]
}

// Styles returns the style set derived from the active theme.
func (k *Kit) Styles() Styles {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.styles
}

// SetTheme switches the active theme by name. The swap is atomic with
// respect to concurrent Styles and CurrentTheme calls.
func (k *Kit) SetTheme(name string) error {
	next, ok := k.themes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	k.mu.Lock()
	k.current = name
	k.styles = BuildStyles(next)
	k.mu.Unlock()

	k.logger.Debug().Str("instance_id", k.id).Str("theme", name).Msg("theme switched")
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
