package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Start    key.Binding
	Stop     key.Binding
	Length   key.Binding
	Category key.Binding
	Note     key.Binding
	Save     key.Binding
	Leave    key.Binding
	Reload   key.Binding
	Clear    key.Binding
	Copy     key.Binding
	Left     key.Binding
	Right    key.Binding
	Generate key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev tab"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start session"),
	),
	Stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop session"),
	),
	Length: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "25/50 min"),
	),
	Category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "category"),
	),
	Note: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "write note"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save note"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave note"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload history"),
	),
	Clear: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear history"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy history"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev window"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next window"),
	),
	Generate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "generate report"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Start, k.Stop, k.Note, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Quit},
		{k.Start, k.Stop, k.Length, k.Category, k.Note, k.Save, k.Leave},
		{k.Reload, k.Clear, k.Copy},
		{k.Left, k.Right, k.Generate},
	}
}
