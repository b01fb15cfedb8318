package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/violetkit/violet/internal/kit"
)

// Card is a bordered content panel with an optional title line.
//
// Props: "title" (string), "body" (string), "rounded" (string corner
// rounding), "width" (int inner width, 0 = fit content).
type Card struct {
	Title   string
	Body    string
	Rounded string
	Width   int

	kit *kit.Kit
}

// NewCard builds a card from merged props.
func NewCard(k *kit.Kit, props kit.Props) *Card {
	return &Card{
		Title:   props.String("title", ""),
		Body:    props.String("body", ""),
		Rounded: props.String("rounded", ""),
		Width:   props.Int("width", 0),
		kit:     k,
	}
}

// View renders the card with the kit's active styles.
func (c *Card) View() string {
	styles := c.kit.Styles()
	tokens := styles.Theme.Tokens

	content := c.Body
	if c.Title != "" {
		title := styles.Title.Render(c.Title)
		if content == "" {
			content = title
		} else {
			content = lipgloss.JoinVertical(lipgloss.Left, title, content)
		}
	}

	frame := lipgloss.NewStyle().
		Padding(0, 1).
		Border(kit.BorderFor(c.Rounded)).
		BorderForeground(lipgloss.Color(tokens.Border))
	if c.Width > 0 {
		frame = frame.Width(c.Width)
	}

	return frame.Render(content)
}
