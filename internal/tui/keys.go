package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down       key.Binding
	Toggle         key.Binding
	Add, Edit, Del key.Binding
	Yes, No        key.Binding
	Map            key.Binding
	Walk, Transit  key.Binding
	Taxi           key.Binding
	Copy           key.Binding
	Dark           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "opp")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "ned")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "åpne/lukk dag")),
		Add:     key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "ny aktivitet")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rediger")),
		Del:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "slett")),
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "bekreft")),
		No:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "avbryt")),
		Map:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "åpne i kart")),
		Walk:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "gå")),
		Transit: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "kollektiv")),
		Taxi:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "taxi")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "kopier adresse")),
		Dark:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "mørk/lys")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hjelp")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "avslutt")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Edit, k.Del, k.Map, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Add, k.Edit, k.Del},
		{k.Map, k.Walk, k.Transit, k.Taxi},
		{k.Copy, k.Dark, k.Help, k.Quit},
	}
}

type formKeyMap struct {
	Next, Prev key.Binding
	DayLeft    key.Binding
	DayRight   key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "neste felt")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "forrige")),
		DayLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "dag")),
		DayRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "dag")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "lagre")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "avbryt")),
	}
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.DayLeft, k.DayRight, k.Submit, k.Cancel}
}

func (k formKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
