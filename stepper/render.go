package stepper

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/numspin/interaction"
	"github.com/iw2rmb/numspin/internal/grapheme"
)

func (m Model) View() string {
	l := m.layout()
	var sb strings.Builder
	if m.Editing() {
		sb.WriteString(m.renderEdit(l.textW))
	} else {
		sb.WriteString(m.renderValue(l.textW))
	}
	sb.WriteByte(' ')
	sb.WriteString(m.renderControls(l))
	return sb.String()
}

func (m Model) textStyle() lipgloss.Style {
	st, tag := m.cfg.Style, m.out.tag
	switch {
	case tag.Beep:
		return st.Beep
	case tag.Invalid:
		return st.Invalid
	case tag.OutOfBounds:
		return st.OutOfBounds
	default:
		return st.Text
	}
}

// renderValue right-aligns the formatted value in w cells.
func (m Model) renderValue(w int) string {
	text := m.out.text
	if runewidth.StringWidth(text) > w {
		text = runewidth.Truncate(text, w, "…")
	}
	pad := w - runewidth.StringWidth(text)
	return strings.Repeat(" ", max(pad, 0)) + m.textStyle().Render(text)
}

// renderEdit left-aligns the edit text in w cells with the cursor kept in
// view.
func (m Model) renderEdit(w int) string {
	cl := m.fld.Clusters()
	cur := m.fld.Cursor()
	sel, hasSel := m.fld.Selection()
	st := m.textStyle()

	var sb strings.Builder
	used := 0
	for i := m.editWindow(cl, cur, w); i < len(cl); i++ {
		cw := grapheme.Width(cl[i])
		if used+cw > w {
			break
		}
		s := st
		switch {
		case m.focused && i == cur && !hasSel:
			s = m.cfg.Style.Cursor
		case hasSel && i >= sel.Start && i < sel.End:
			s = m.cfg.Style.Selection
		}
		sb.WriteString(s.Render(cl[i]))
		used += cw
	}
	if m.focused && !hasSel && cur == len(cl) && used < w {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		used++
	}
	sb.WriteString(strings.Repeat(" ", max(w-used, 0)))
	return sb.String()
}

// editWindow returns the first visible cluster so that the cursor cell fits
// in w cells.
func (m Model) editWindow(cl []string, cur, w int) int {
	start := 0
	for start < cur && grapheme.Cells(cl[start:cur])+1 > w {
		start++
	}
	return start
}

func (m Model) renderControls(l layout) string {
	if !m.out.controls {
		return strings.Repeat(" ", l.upW+l.downW)
	}
	g, tag := m.cfg.Glyphs, m.out.tag
	up, down := g.Up, g.Down
	if tag.Controls == interaction.ConfirmControls {
		up, down = g.Confirm, g.Cancel
	}
	return m.controlStyle(interaction.Up).Render(runewidth.FillRight(up, l.upW)) +
		m.controlStyle(interaction.Down).Render(runewidth.FillRight(down, l.downW))
}

func (m Model) controlStyle(b interaction.Target) lipgloss.Style {
	st, tag := m.cfg.Style, m.out.tag
	if b == interaction.Up && tag.Beep {
		return st.Beep
	}
	if tag.Button != b {
		return st.Control
	}
	switch tag.State {
	case interaction.VisualHover:
		return st.ControlHover
	case interaction.VisualActive, interaction.VisualKey:
		return st.ControlActive
	case interaction.VisualSpin:
		return st.ControlSpin
	default:
		return st.Control
	}
}
