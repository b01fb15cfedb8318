// Package components provides the component implementations shipped
// with violet.
package components

import "github.com/violetkit/violet/internal/kit"

// Component type names used as registry and defaults-map keys.
const (
	TypeButton    = "Button"
	TypeCard      = "Card"
	TypeTextField = "TextField"
	TypeTooltip   = "Tooltip"
)

// Registry returns the full component registry. The map is rebuilt on
// every call so a kit can own its copy.
func Registry() map[string]kit.Factory {
	return map[string]kit.Factory{
		TypeButton: func(k *kit.Kit, props kit.Props) kit.Widget {
			return NewButton(k, props)
		},
		TypeCard: func(k *kit.Kit, props kit.Props) kit.Widget {
			return NewCard(k, props)
		},
		TypeTextField: func(k *kit.Kit, props kit.Props) kit.Widget {
			return NewTextField(k, props)
		},
		TypeTooltip: func(k *kit.Kit, props kit.Props) kit.Widget {
			return NewTooltip(k, props)
		},
	}
}
