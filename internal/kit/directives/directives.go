// Package directives provides the behavioral directives registered
// with a violet kit.
package directives

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/violetkit/violet/internal/kit"
)

// Registry returns the full directive registry. The map is rebuilt on
// every call so a kit can own its copy.
func Registry() map[string]kit.Directive {
	return map[string]kit.Directive{
		"truncate": Truncate,
		"blink":    Blink,
	}
}

// Truncate shortens each line of content to the "width" prop measured
// in display cells, appending an ellipsis to lines that were cut.
// Wide runes and ANSI escape sequences are cut cleanly.
func Truncate(content string, props kit.Props) string {
	width := props.Int("width", 0)
	if width <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) <= width {
			continue
		}
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}

// Blink wraps content in the terminal blink attribute.
func Blink(content string, props kit.Props) string {
	if !props.Bool("enabled", true) {
		return content
	}
	return lipgloss.NewStyle().Blink(true).Render(content)
}
