package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/violetkit/violet/internal/kit"
)

// TextField is a single-line text input wrapped in a themed frame.
//
// Props: "placeholder" (string), "rounded" (string corner rounding),
// "width" (int input width), "limit" (int char limit).
type TextField struct {
	Input   textinput.Model
	Rounded string

	kit *kit.Kit
}

// NewTextField builds a text field from merged props.
func NewTextField(k *kit.Kit, props kit.Props) *TextField {
	tokens := k.Styles().Theme.Tokens

	input := textinput.New()
	input.Placeholder = props.String("placeholder", "")
	input.Width = props.Int("width", 40)
	if limit := props.Int("limit", 0); limit > 0 {
		input.CharLimit = limit
	}
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus))

	return &TextField{
		Input:   input,
		Rounded: props.String("rounded", ""),
		kit:     k,
	}
}

// Focus gives the field keyboard focus.
func (f *TextField) Focus() tea.Cmd {
	return f.Input.Focus()
}

// Blur removes keyboard focus.
func (f *TextField) Blur() {
	f.Input.Blur()
}

// Value returns the current input text.
func (f *TextField) Value() string {
	return f.Input.Value()
}

// Update forwards a bubbletea message to the wrapped input.
func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// View renders the field with the kit's active styles.
func (f *TextField) View() string {
	styles := f.kit.Styles()
	tokens := styles.Theme.Tokens

	borderColor := tokens.Border
	if f.Input.Focused() {
		borderColor = tokens.Focus
	}

	frame := lipgloss.NewStyle().
		Padding(0, 1).
		Border(kit.BorderFor(f.Rounded)).
		BorderForeground(lipgloss.Color(borderColor))

	return frame.Render(f.Input.View())
}
