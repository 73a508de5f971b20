package stepper

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numspin/interaction"
	"github.com/iw2rmb/numspin/internal/field"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.Editing() {
		return m.updateEditKey(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Increment):
		return m, m.pressKey(interaction.KeyArrowUp)
	case key.Matches(msg, km.Decrement):
		return m, m.pressKey(interaction.KeyArrowDown)
	case key.Matches(msg, km.Edit):
		return m, m.dispatch(interaction.FocusIn{})
	}
	return m, nil
}

func (m Model) updateEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Pasted text is always literal.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		text := string(msg.Runes)
		return m, m.edit(func(f *field.Field) { f.InsertText(text) })
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Confirm):
		return m, m.pressKey(interaction.KeyEnter)
	case key.Matches(msg, km.Cancel):
		return m, m.pressKey(interaction.KeyEscape)

	case key.Matches(msg, km.Left):
		m.fld.Move(field.Move{Unit: field.MoveGrapheme, Dir: field.DirLeft})
	case key.Matches(msg, km.Right):
		m.fld.Move(field.Move{Unit: field.MoveGrapheme, Dir: field.DirRight})
	case key.Matches(msg, km.ShiftLeft):
		m.fld.Move(field.Move{Unit: field.MoveGrapheme, Dir: field.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.fld.Move(field.Move{Unit: field.MoveGrapheme, Dir: field.DirRight, Extend: true})
	case key.Matches(msg, km.Home):
		m.fld.Move(field.Move{Unit: field.MoveLine, Dir: field.DirHome})
	case key.Matches(msg, km.End):
		m.fld.Move(field.Move{Unit: field.MoveLine, Dir: field.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.fld.Move(field.Move{Unit: field.MoveLine, Dir: field.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.fld.Move(field.Move{Unit: field.MoveLine, Dir: field.DirEnd, Extend: true})
	case key.Matches(msg, km.SelectAll):
		m.fld.SelectAll()

	case key.Matches(msg, km.Backspace):
		return m, m.edit((*field.Field).DeleteBackward)
	case key.Matches(msg, km.Delete):
		return m, m.edit((*field.Field).DeleteForward)
	case key.Matches(msg, km.Undo):
		return m, m.edit(func(f *field.Field) { f.Undo() })
	case key.Matches(msg, km.Redo):
		return m, m.edit(func(f *field.Field) { f.Redo() })

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			text := string(msg.Runes)
			return m, m.edit(func(f *field.Field) { f.InsertText(text) })
		}
		if msg.Type == tea.KeySpace {
			return m, m.edit(func(f *field.Field) { f.InsertText(" ") })
		}
	}
	return m, nil
}
