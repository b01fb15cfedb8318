package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/violetkit/violet/internal/kit"
)

// Button is a focusable action label.
//
// Props: "label" (string), "rounded" (string corner rounding),
// "focused" (bool).
type Button struct {
	Label   string
	Rounded string
	Focused bool

	kit *kit.Kit
}

// NewButton builds a button from merged props.
func NewButton(k *kit.Kit, props kit.Props) *Button {
	return &Button{
		Label:   props.String("label", "Button"),
		Rounded: props.String("rounded", ""),
		Focused: props.Bool("focused", false),
		kit:     k,
	}
}

// View renders the button with the kit's active styles.
func (b *Button) View() string {
	styles := b.kit.Styles()
	tokens := styles.Theme.Tokens

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(kit.BorderFor(b.Rounded)).
		BorderForeground(lipgloss.Color(tokens.Border)).
		Foreground(lipgloss.Color(tokens.Primary))

	if b.Focused {
		style = style.
			Bold(true).
			BorderForeground(lipgloss.Color(tokens.Focus)).
			Foreground(lipgloss.Color(tokens.Focus))
	}

	return style.Render(b.Label)
}
