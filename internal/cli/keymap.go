package cli

import "github.com/charmbracelet/bubbles/key"

// checklistKeyMap holds the bindings of the checklist screen. It satisfies
// help.KeyMap so the footer can render it.
type checklistKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextGroup  key.Binding
	PrevGroup  key.Binding
	Toggle     key.Binding
	Pilot      key.Binding
	Experience key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultChecklistKeyMap() checklistKeyMap {
	return checklistKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGroup:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevGroup:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle")),
		Pilot:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "VFR/IFR")),
		Experience: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "hours in type")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset form")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k checklistKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Pilot, k.Experience, k.Reset, k.Help, k.Quit}
}

func (k checklistKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGroup, k.PrevGroup},
		{k.Toggle, k.Reset},
		{k.Pilot, k.Experience},
		{k.Help, k.Quit},
	}
}
