package termhost

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	NextViewer key.Binding
	PrevViewer key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextViewer: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next viewer"),
	),
	PrevViewer: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev viewer"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel edit"),
	),
}

// shortHelp is the key hint shown in the status line.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.NextViewer, k.Quit}
}
