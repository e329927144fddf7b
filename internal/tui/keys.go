package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cancel key.Binding
	Export key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Export: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export pdf")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cancel, k.Export, k.Theme},
		{k.Help, k.Quit},
	}
}
