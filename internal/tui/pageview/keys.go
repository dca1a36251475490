package pageview

import "github.com/charmbracelet/bubbles/key"

type pageKeyMap struct {
	NextArea    key.Binding
	PrevArea    key.Binding
	Activate    key.Binding
	ToggleTheme key.Binding
	Increment   key.Binding
	Reset       key.Binding
	Up          key.Binding
	Down        key.Binding
	ClearError  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func (k pageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextArea, k.Activate, k.ToggleTheme, k.Increment, k.Reset, k.Help, k.Quit}
}

func (k pageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextArea, k.PrevArea, k.Activate},
		{k.ToggleTheme, k.Increment, k.Reset},
		{k.Up, k.Down, k.ClearError},
		{k.Help, k.Quit},
	}
}

type formKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Leave     key.Binding
	Quit      key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Submit, k.Leave, k.Quit}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextField, k.PrevField}, {k.Submit, k.Leave, k.Quit}}
}

func defaultPageKeys() pageKeyMap {
	return pageKeyMap{
		NextArea:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevArea:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		Activate:    key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "press")),
		ToggleTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Increment:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "count")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset count")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous question")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next question")),
		ClearError:  key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "dismiss error")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func defaultFormKeys() formKeyMap {
	return formKeyMap{
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave form")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
