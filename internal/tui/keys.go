package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	SwitchLs key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Income   key.Binding
	Export   key.Binding
	Import   key.Binding
	Reset    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		NextTab:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev tab")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		SwitchLs: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Income:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "income")),
		Export:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		Import:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "import")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
	}
}

// hints renders "k action" pairs for the status bar.
func hints(bindings ...key.Binding) string {
	var s string
	for i, b := range bindings {
		if i > 0 {
			s += "  "
		}
		h := b.Help()
		s += "[" + h.Key + "]" + h.Desc
	}
	return s
}
