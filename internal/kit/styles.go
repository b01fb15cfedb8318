package kit

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/violetkit/violet/internal/theme"
)

// Styles contains lipgloss styles derived from theme tokens. A style
// set is rebuilt whenever the active theme changes.
type Styles struct {
	Theme   theme.Theme
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Primary lipgloss.Style
	Surface lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(t theme.Theme) Styles {
	tokens := t.Tokens

	return Styles{
		Theme:   t,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Primary)),
		Surface: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Surface)),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
	}
}

// BorderFor maps a corner-rounding prop value to a lipgloss border.
// "lg" and "xl" round the corners, "none" hides the border, anything
// else keeps the plain square border.
func BorderFor(rounded string) lipgloss.Border {
	switch rounded {
	case "lg", "xl":
		return lipgloss.RoundedBorder()
	case "none":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
