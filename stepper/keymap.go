package stepper

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the stepper key bindings. Increment and Decrement apply
// while the value is shown; the rest while it is edited, except Edit.
type KeyMap struct {
	Increment, Decrement key.Binding
	Edit                 key.Binding
	Confirm, Cancel      key.Binding

	Left, Right           key.Binding
	ShiftLeft, ShiftRight key.Binding
	Home, End             key.Binding
	ShiftHome, ShiftEnd   key.Binding
	SelectAll             key.Binding

	Backspace, Delete key.Binding
	Undo, Redo        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(key.WithKeys("up", "k", "+"), key.WithHelp("↑/k/+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("down", "j", "-"), key.WithHelp("↓/j/-", "decrement")),
		Edit:      key.NewBinding(key.WithKeys("enter", "f2"), key.WithHelp("enter", "edit")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		Home:       key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:        key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),
		ShiftHome:  key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Edit, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.Edit},
		{k.Confirm, k.Cancel, k.Undo, k.Redo},
	}
}

func (k KeyMap) empty() bool {
	return len(k.Increment.Keys()) == 0 && len(k.Confirm.Keys()) == 0
}
