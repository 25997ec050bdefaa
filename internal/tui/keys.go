package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "previous")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete")),
		Add:    key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Grab:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		Drop:   key.NewBinding(key.WithKeys("enter", "m"), key.WithHelp("enter/m", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// tableKeys is the help shown while browsing the table.
type tableKeys struct{ keyMap }

func (k tableKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Delete, k.Grab, k.Prev, k.Next, k.Quit}
}

func (k tableKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Add, k.Edit, k.Toggle, k.Delete},
		{k.Grab, k.Quit},
	}
}

// grabKeys is the help shown while an item is being moved.
type grabKeys struct{ keyMap }

func (k grabKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Drop, k.Cancel, k.Quit}
}

func (k grabKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// formKeys is the help shown while the input is focused.
type formKeys struct{ keyMap }

func (k formKeys) ShortHelp() []key.Binding { return []key.Binding{k.Submit, k.Cancel} }

func (k formKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
