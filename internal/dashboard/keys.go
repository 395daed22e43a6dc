package dashboard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	PrevPage       key.Binding
	NextPage       key.Binding
	Toggle         key.Binding
	Collapse       key.Binding
	SelectAll      key.Binding
	Sort           key.Binding
	SortProvider   key.Binding
	DeleteRow      key.Binding
	DeleteSelected key.Binding
	DeleteAll      key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:       key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:       key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		Toggle:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select/fold")),
		Collapse:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fold group")),
		SelectAll:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Sort:           key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "sort column")),
		SortProvider:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "sort provider")),
		DeleteRow:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete row")),
		DeleteSelected: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
		DeleteAll:      key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete all")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.Sort, k.DeleteSelected, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Toggle, k.Collapse, k.SelectAll, k.Sort, k.SortProvider},
		{k.DeleteRow, k.DeleteSelected, k.DeleteAll},
		{k.Help, k.Quit},
	}
}
