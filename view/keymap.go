package view

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid key bindings.
//
// Commit, Cancel and NextCell apply while the inline editor is open; the
// rest apply while navigating.
type KeyMap struct {
	Up, Down, Left, Right                         key.Binding
	ExtendUp, ExtendDown, ExtendLeft, ExtendRight key.Binding

	Edit, Commit, Cancel, NextCell key.Binding
	Clear                          key.Binding

	Undo, Redo key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		ExtendUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "extend up")),
		ExtendDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "extend down")),
		ExtendLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "extend left")),
		ExtendRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "extend right")),

		Edit:     key.NewBinding(key.WithKeys("enter", "f2"), key.WithHelp("enter", "edit cell")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
		NextCell: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "commit and move right")),
		Clear:    key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear selection")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),
	}
}
