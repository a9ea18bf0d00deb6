package quiz

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings the quiz screen responds to.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Grab    key.Binding
	Next    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Grab: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "grab/drop line"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Grab, k.Next, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Grab},
		{k.Choose, k.Next},
		{k.Restart, k.Quit},
	}
}

// forQuestion enables only the bindings that apply to the current screen.
func (k keyMap) forQuestion(reorder, answered, finished bool) keyMap {
	playing := !finished && !answered
	k.Up.SetEnabled(playing)
	k.Down.SetEnabled(playing)
	k.Choose.SetEnabled(playing)
	k.Grab.SetEnabled(playing && reorder)
	k.Next.SetEnabled(!finished && answered)
	return k
}
