package stepper

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/numspin/interaction"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	x, y := msg.X-m.x, msg.Y-m.y
	t := m.targetAt(x, y)
	cmds := []tea.Cmd{m.moveTo(t)}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || t == interaction.None {
			break
		}
		m.press = t
		editing := m.Editing()
		cmds = append(cmds, m.dispatch(interaction.PointerDown{Target: t}))
		switch {
		case t == interaction.Input && editing:
			m.fld.SetCursor(m.cursorAt(x))
		case t == interaction.Input && !m.focused:
			// The press focuses the widget; the machine's pointer-focus
			// guard keeps this from opening the editor before release.
			m.focused = true
			cmds = append(cmds, m.dispatch(interaction.FocusIn{}))
		}

	case tea.MouseActionRelease:
		pressed := m.press
		m.press = interaction.None
		if pressed == interaction.None {
			break
		}
		cmds = append(cmds, m.dispatch(interaction.PointerUp{Target: t}))
		if pressed == t {
			cmds = append(cmds, m.dispatch(interaction.Click{Target: t}))
		}
	}
	return m, tea.Batch(cmds...)
}

// moveTo translates a change of the region under the pointer into enter and
// leave events.
func (m *Model) moveTo(t interaction.Target) tea.Cmd {
	prev := m.hover
	if t == prev {
		return nil
	}
	m.hover = t

	var evs []interaction.Event
	switch {
	case prev == interaction.None:
		evs = append(evs, interaction.PointerEnter{})
		if t.IsControl() {
			evs = append(evs, interaction.ControlEnter{Target: t})
		}
	case t == interaction.None:
		if prev.IsControl() {
			evs = append(evs, interaction.ControlLeave{From: prev, To: t})
		}
		evs = append(evs, interaction.PointerLeave{})
	default:
		if prev.IsControl() {
			evs = append(evs, interaction.ControlLeave{From: prev, To: t})
		}
		if t.IsControl() {
			evs = append(evs, interaction.ControlEnter{Target: t})
		}
	}

	cmds := make([]tea.Cmd, 0, len(evs))
	for _, ev := range evs {
		cmds = append(cmds, m.dispatch(ev))
	}
	return tea.Batch(cmds...)
}
