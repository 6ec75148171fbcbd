package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyExpand KeyName = iota
	KeyCollapse
	KeyToggle
	KeyHideContent
	KeyEnable
	KeyPrevTab
	KeyNextTab
	KeyCopy
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"e":         KeyExpand,
	"up":        KeyExpand,
	"c":         KeyCollapse,
	"down":      KeyCollapse,
	" ":         KeyToggle,
	"v":         KeyHideContent,
	"d":         KeyEnable,
	"shift+tab": KeyPrevTab,
	"left":      KeyPrevTab,
	"tab":       KeyNextTab,
	"right":     KeyNextTab,
	"y":         KeyCopy,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyExpand: key.NewBinding(
		key.WithKeys("e", "up"),
		key.WithHelp("e", "expand"),
	),
	KeyCollapse: key.NewBinding(
		key.WithKeys("c", "down"),
		key.WithHelp("c", "collapse"),
	),
	KeyToggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	KeyHideContent: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "hide content"),
	),
	KeyEnable: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "lock/unlock"),
	),
	KeyPrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("←", "prev tab"),
	),
	KeyNextTab: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("→", "next tab"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy state"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// KeyMap adapts the global bindings to help.KeyMap.
type KeyMap struct{}

// ShortHelp returns the bindings shown in the single line menu.
func (KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		GlobalkeyBindings[KeyToggle],
		GlobalkeyBindings[KeyNextTab],
		GlobalkeyBindings[KeyHelp],
		GlobalkeyBindings[KeyQuit],
	}
}

// FullHelp groups every binding into columns.
func (KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{GlobalkeyBindings[KeyExpand], GlobalkeyBindings[KeyCollapse], GlobalkeyBindings[KeyToggle]},
		{GlobalkeyBindings[KeyPrevTab], GlobalkeyBindings[KeyNextTab]},
		{GlobalkeyBindings[KeyHideContent], GlobalkeyBindings[KeyEnable], GlobalkeyBindings[KeyCopy]},
		{GlobalkeyBindings[KeyHelp], GlobalkeyBindings[KeyQuit]},
	}
}
