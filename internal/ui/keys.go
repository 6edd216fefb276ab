package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap lists every binding of the search view. Printable keys are left to
// the query box, so all actions use modifiers or function keys.
type keyMap struct {
	Submit      key.Binding
	NextExample key.Binding
	Example     key.Binding // alt+1..alt+9, matched by exampleIndex
	ToggleRaw   key.Binding
	OpenPager   key.Binding
	SignOut     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		NextExample: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next example"),
		),
		Example: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1…9", "use example"),
		),
		ToggleRaw: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "raw payload"),
		),
		OpenPager: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "raw in pager"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "sign out"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Example, k.ToggleRaw, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextExample, k.Example},
		{k.ToggleRaw, k.OpenPager},
		{k.SignOut, k.Help, k.Quit},
	}
}

// exampleIndex maps alt+1..alt+9 to a zero-based example index
func exampleIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != len("alt+1") || s[:4] != "alt+" {
		return 0, false
	}
	d := s[4]
	if d < '1' || d > '9' {
		return 0, false
	}
	return int(d - '1'), true
}
