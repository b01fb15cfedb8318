package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/violetkit/violet/internal/kit"
	"github.com/violetkit/violet/internal/kit/components"
)

const minGalleryWidth = 48

type keyMap struct {
	Theme key.Binding
	Focus key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Focus, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Theme, k.Focus, k.Quit}}
}

var galleryKeys = keyMap{
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "switch theme"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle focus"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Gallery is the demo program that showcases every registered
// component under the active theme.
type Gallery struct {
	kit   *kit.Kit
	field *components.TextField
	help  help.Model
	width int
	err   error
}

// NewGallery builds the gallery model on top of a configured kit.
func NewGallery(k *kit.Kit) *Gallery {
	g := &Gallery{kit: k, help: help.New()}

	widget, err := k.Render(components.TypeTextField, kit.Props{
		"placeholder": "Type here...",
		"width":       32,
	})
	if err != nil {
		g.err = err
		return g
	}
	g.field = widget.(*components.TextField)
	return g
}

func (g *Gallery) Init() tea.Cmd {
	if g.field != nil {
		return g.field.Focus()
	}
	return nil
}

func (g *Gallery) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.help.Width = msg.Width
		return g, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, galleryKeys.Quit):
			return g, tea.Quit
		case key.Matches(msg, galleryKeys.Theme):
			g.err = g.kit.SetTheme(g.nextTheme())
			return g, nil
		case key.Matches(msg, galleryKeys.Focus):
			if g.field != nil {
				if g.field.Input.Focused() {
					g.field.Blur()
					return g, nil
				}
				return g, g.field.Focus()
			}
			return g, nil
		}
	}

	if g.field != nil && g.field.Input.Focused() {
		return g, g.field.Update(msg)
	}
	return g, nil
}

func (g *Gallery) View() string {
	if g.err != nil {
		return g.kit.Styles().Error.Render(g.err.Error()) + "\n"
	}

	styles := g.kit.Styles()
	sections := []string{
		styles.Title.Render("violet gallery"),
		styles.Muted.Render("theme: " + g.kit.CurrentTheme().Name),
		"",
	}

	if view, err := g.componentViews(); err != nil {
		sections = append(sections, styles.Error.Render(err.Error()))
	} else {
		sections = append(sections, view)
	}

	sections = append(sections, "", g.help.View(galleryKeys))
	out := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if g.width > 0 && g.width < minGalleryWidth {
		out, _ = g.kit.Apply("truncate", out, kit.Props{"width": g.width})
	}
	return out
}

func (g *Gallery) componentViews() (string, error) {
	button, err := g.kit.Render(components.TypeButton, kit.Props{"label": "Submit"})
	if err != nil {
		return "", err
	}

	tooltip, err := g.kit.Render(components.TypeTooltip, kit.Props{
		"text":   "sends the form",
		"anchor": button.View(),
	})
	if err != nil {
		return "", err
	}

	card, err := g.kit.Render(components.TypeCard, kit.Props{
		"title": "Card",
		"body":  "Large corner rounding by default.",
		"width": 36,
	})
	if err != nil {
		return "", err
	}

	var fieldView string
	if g.field != nil {
		fieldView = g.field.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tooltip.View(), "", card.View(), "", fieldView), nil
}

func (g *Gallery) nextTheme() string {
	names := g.kit.ThemeNames()
	current := g.kit.CurrentTheme().Name
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return current
}
