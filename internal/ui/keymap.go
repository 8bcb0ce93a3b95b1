package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the viewer's key bindings. It satisfies help.KeyMap so
// the footer can render itself from the bindings.
type KeyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	JumpTab   key.Binding
	NextSlide key.Binding
	PrevSlide key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-4", "jump to tab"),
		),
		NextSlide: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next chart"),
		),
		PrevSlide: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous chart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevSlide, k.NextSlide, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevSlide, k.NextSlide},
		{k.NextTab, k.PrevTab, k.JumpTab},
		{k.Help, k.Quit},
	}
}
