package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/violetkit/violet/internal/kit"
)

// Tooltip placement values.
const (
	LocationTop    = "top"
	LocationBottom = "bottom"
)

// Tooltip attaches a hint line to an anchor.
//
// Props: "text" (string hint), "anchor" (string content the hint
// describes), "location" ("top" or "bottom" relative to the anchor).
type Tooltip struct {
	Text     string
	Anchor   string
	Location string

	kit *kit.Kit
}

// NewTooltip builds a tooltip from merged props. Unrecognized
// locations fall back to bottom.
func NewTooltip(k *kit.Kit, props kit.Props) *Tooltip {
	location := props.String("location", LocationBottom)
	if location != LocationTop && location != LocationBottom {
		location = LocationBottom
	}
	return &Tooltip{
		Text:     props.String("text", ""),
		Anchor:   props.String("anchor", ""),
		Location: location,
		kit:      k,
	}
}

// View renders the anchor with the hint on the configured side.
func (t *Tooltip) View() string {
	styles := t.kit.Styles()
	tokens := styles.Theme.Tokens

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tokens.TextMuted)).
		Background(lipgloss.Color(tokens.Surface)).
		Padding(0, 1).
		Render(t.Text)

	if t.Anchor == "" {
		return hint
	}
	if t.Text == "" {
		return t.Anchor
	}

	if t.Location == LocationTop {
		return lipgloss.JoinVertical(lipgloss.Left, hint, t.Anchor)
	}
	return lipgloss.JoinVertical(lipgloss.Left, t.Anchor, hint)
}
