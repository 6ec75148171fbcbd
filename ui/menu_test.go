package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"switcherpanel/keys"
	"switcherpanel/panel"
	"switcherpanel/testing/snapshot"
)

func newTestMenu(width, height int) *Menu {
	lipgloss.SetColorProfile(termenv.Ascii)
	m := NewMenu()
	m.SetSize(width, height)
	m.SetPanelState(panel.StatusExpanded, 1, false)
	return m
}

func TestMenuFullOptions(t *testing.T) {
	m := newTestMenu(140, 2)
	out := snapshot.StripANSI(m.String())

	assert.Contains(t, out, "e expand")
	assert.Contains(t, out, "c collapse")
	assert.Contains(t, out, "v hide content")
	assert.Contains(t, out, "q quit")
	assert.Equal(t, 2, snapshot.Lines(out))
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 140, lipgloss.Width(line))
	}
}

func TestMenuFallsBackWhenNarrow(t *testing.T) {
	m := newTestMenu(80, 2)
	out := snapshot.StripANSI(m.String())

	assert.Contains(t, out, "space toggle")
	assert.Contains(t, out, "? help")
	assert.NotContains(t, out, "hide content")
}

func TestMenuCompact(t *testing.T) {
	m := newTestMenu(140, 1)
	m.SetCompact(true)
	out := snapshot.StripANSI(m.String())

	assert.Equal(t, 1, snapshot.Lines(out))
	assert.Contains(t, out, "space toggle")
	assert.NotContains(t, out, "e expand")
	assert.NotContains(t, out, "offset", "no room for the status line")
}

func TestMenuStatusLine(t *testing.T) {
	m := newTestMenu(100, 2)
	snap := snapshot.New(t)

	snap.AssertRow(m.String(), 0, IconExpanded+" expanded")
	snap.AssertRow(m.String(), 0, "offset 1.00")
	snap.AssertNotContains(m.String(), "locked")

	m.SetPanelState(panel.StatusFling, 0.4, true)
	m.SetLastEvent("fling")
	snap.AssertRow(m.String(), 0, IconFling+" fling")
	snap.AssertRow(m.String(), 0, "offset 0.40")
	snap.AssertRow(m.String(), 0, IconLocked+" locked")
	snap.AssertRow(m.String(), 0, "last: fling")
	assert.Equal(t, "fling", m.LastEvent())
}

func TestMenuKeydown(t *testing.T) {
	m := newTestMenu(140, 2)
	plain := snapshot.StripANSI(m.String())

	m.Keydown(keys.KeyCollapse)
	assert.Equal(t, keys.KeyCollapse, m.keyDown)
	assert.Equal(t, plain, snapshot.StripANSI(m.String()), "highlighting only changes styling")

	m.ClearKeydown()
	assert.Equal(t, keys.KeyName(-1), m.keyDown)
}

func TestMenuHelpView(t *testing.T) {
	m := newTestMenu(100, 2)
	help := snapshot.StripANSI(m.HelpView())

	for _, want := range []string{"expand", "collapse", "prev tab", "lock/unlock", "copy state", "quit"} {
		assert.Contains(t, help, want)
	}
}

func TestStatusBadge(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Contains(t, StatusBadge(panel.StatusExpanded), "▲ expanded")
	assert.Contains(t, StatusBadge(panel.StatusCollapsed), "▼ collapsed")
	assert.Contains(t, StatusBadge(panel.StatusFling), "↕ fling")
}

func TestErrBox(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	e := NewErrBox()
	e.SetSize(40, 1)

	assert.Empty(t, strings.TrimSpace(e.String()))

	e.SetError(errors.New("panel is locked\nsecond line"))
	out := snapshot.StripANSI(e.String())
	assert.Contains(t, out, "panel is locked")
	assert.NotContains(t, out, "second line")
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.EqualError(t, e.Err(), "panel is locked\nsecond line")

	e.SetError(errors.New(strings.Repeat("x", 60)))
	assert.Contains(t, snapshot.StripANSI(e.String()), "…")

	e.Clear()
	assert.NoError(t, e.Err())
}
