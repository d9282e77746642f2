package exercise

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Move      key.Binding // help only; Left/Right do the work
	Left      key.Binding
	Right     key.Binding
	SwitchRow key.Binding
	Toggle    key.Binding
	PlaceNth  key.Binding
	Check     key.Binding
	Hint      key.Binding
	GiveUp    key.Binding
	Restart   key.Binding
	Next      key.Binding
	Back      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←→", "Move"),
		),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		SwitchRow: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("Tab", "Row"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("Enter", "Place"),
		),
		PlaceNth: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		),
		Check: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Check"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "Hint"),
		),
		GiveUp: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Give up"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Restart"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "Next"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Map"),
		),
	}
}
