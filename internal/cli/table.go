package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/violetkit/violet/internal/kit"
)

const (
	tablePadding = 2
	emptyCell    = "-"
)

// writeThemesTable lists the registered themes with their variant,
// their primary accent, and which one is active.
func writeThemesTable(out io.Writer, k *kit.Kit) error {
	active := k.CurrentTheme().Name
	themes := k.Themes()

	rows := make([][]string, 0, len(themes))
	for _, name := range k.ThemeNames() {
		t := themes[name]
		rows = append(rows, []string{
			name,
			formatYesNo(t.Dark),
			formatYesNo(name == active),
			t.Tokens.Primary,
		})
	}
	return writeTable(out, []string{"NAME", "DARK", "ACTIVE", "PRIMARY"}, rows)
}

// writeDefaultsTable lists the global component defaults, one row per
// prop. A component type with an empty entry still gets a row so the
// presence of the entry is visible.
func writeDefaultsTable(out io.Writer, k *kit.Kit) error {
	defaults := k.Defaults()
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		props := defaults[name]
		if len(props) == 0 {
			rows = append(rows, []string{name, emptyCell, emptyCell})
			continue
		}
		keys := make([]string, 0, len(props))
		for key := range props {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			rows = append(rows, []string{name, key, fmt.Sprintf("%v", props[key])})
		}
	}
	return writeTable(out, []string{"COMPONENT", "PROP", "VALUE"}, rows)
}

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
