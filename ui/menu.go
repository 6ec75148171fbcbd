package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"switcherpanel/keys"
	"switcherpanel/panel"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// Menu groups. The first group is the panel actions.
var menuGroups = [][]keys.KeyName{
	{keys.KeyExpand, keys.KeyCollapse, keys.KeyToggle},
	{keys.KeyNextTab, keys.KeyHideContent, keys.KeyEnable},
	{keys.KeyCopy, keys.KeyHelp, keys.KeyQuit},
}

// compactMenuGroups are used when the terminal is narrow or short.
var compactMenuGroups = [][]keys.KeyName{
	{keys.KeyToggle},
	{keys.KeyHelp, keys.KeyQuit},
}

type Menu struct {
	height, width int
	compact       bool

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName

	status    panel.Status
	offset    float64
	locked    bool
	lastEvent string

	help help.Model
}

func NewMenu() *Menu {
	return &Menu{
		keyDown: -1,
		help:    help.New(),
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// SetCompact switches to the short option list.
func (m *Menu) SetCompact(compact bool) {
	m.compact = compact
}

// SetPanelState updates the status line.
func (m *Menu) SetPanelState(status panel.Status, offset float64, locked bool) {
	m.status = status
	m.offset = offset
	m.locked = locked
}

// SetLastEvent records the last status callback, e.g. "collapsed".
func (m *Menu) SetLastEvent(event string) {
	m.lastEvent = event
}

// LastEvent returns the last recorded status callback.
func (m *Menu) LastEvent() string {
	return m.lastEvent
}

// HelpView renders every binding in columns.
func (m *Menu) HelpView() string {
	return m.help.FullHelpView(keys.KeyMap{}.FullHelp())
}

// optionsLine renders the key hints, falling back to the compact groups when
// the full set does not fit.
func (m *Menu) optionsLine() string {
	if !m.compact {
		line := m.renderGroups(menuGroups)
		if m.width <= 0 || lipgloss.Width(line) <= m.width {
			return line
		}
	}
	return m.renderGroups(compactMenuGroups)
}

func (m *Menu) renderGroups(groups [][]keys.KeyName) string {
	var s strings.Builder
	for g, group := range groups {
		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			var (
				localKeyStyle  = keyStyle
				localDescStyle = descStyle
			)
			if g == 0 {
				localKeyStyle = actionGroupStyle
				localDescStyle = actionGroupStyle
			}
			if m.keyDown == k {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if g != len(groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}
	return menuStyle.Render(s.String())
}

func (m *Menu) statusLine() string {
	parts := []string{
		StatusBadge(m.status),
		TextStyles.Secondary.Render(fmt.Sprintf("offset %.2f", m.offset)),
	}
	if m.locked {
		parts = append(parts, StatusStyles.Warning.Render(IconLocked+" locked"))
	}
	if m.lastEvent != "" {
		parts = append(parts, TextStyles.Muted.Render("last: "+m.lastEvent))
	}
	return strings.Join(parts, sepStyle.Render(separator))
}

func (m *Menu) String() string {
	lines := []string{m.optionsLine()}
	if m.height >= 2 {
		lines = append([]string{m.statusLine()}, lines...)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
