package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/violetkit/violet/internal/app"
	"github.com/violetkit/violet/internal/kit"
)

func tableKit(t *testing.T) *kit.Kit {
	t.Helper()
	k, err := kit.New(app.Options())
	require.NoError(t, err)
	return k
}

func TestWriteThemesTableMarksActive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeThemesTable(&buf, tableKit(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "NAME")

	light := strings.Fields(lines[1])
	require.Equal(t, "PurpleTheme", light[0])
	require.Equal(t, "no", light[1], "light variant should not be dark")
	require.Equal(t, "yes", light[2], "default theme should be active")

	dark := strings.Fields(lines[2])
	require.Equal(t, "PurpleThemeDark", dark[0])
	require.Equal(t, "yes", dark[1])
	require.Equal(t, "no", dark[2])
}

func TestWriteThemesTableFollowsSwitch(t *testing.T) {
	k := tableKit(t)
	require.NoError(t, k.SetTheme("PurpleThemeDark"))

	var buf bytes.Buffer
	require.NoError(t, writeThemesTable(&buf, k))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "yes", strings.Fields(lines[2])[2], "switched theme should be active")
}

func TestWriteDefaultsTableShowsEmptyEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDefaultsTable(&buf, tableKit(t)))

	var buttonRow []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == "Button" {
			buttonRow = fields
		}
	}
	require.Equal(t, []string{"Button", "-", "-"}, buttonRow, "empty Button entry should still be listed")

	out := buf.String()
	require.Contains(t, out, "Card")
	require.Contains(t, out, "rounded")
	require.Contains(t, out, "lg")
	require.Contains(t, out, "location")
	require.Contains(t, out, "top")
}
