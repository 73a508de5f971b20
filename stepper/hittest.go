package stepper

import (
	"github.com/iw2rmb/numspin/interaction"
	"github.com/iw2rmb/numspin/internal/grapheme"
)

// layout is the cell geometry of one row:
//
//	[text: textW][gap][up: upW][down: downW]
type layout struct {
	textW int
	upW   int
	downW int
}

func (l layout) upX() int   { return l.textW + 1 }
func (l layout) downX() int { return l.upX() + l.upW }
func (l layout) total() int { return l.downX() + l.downW }

func (m Model) layout() layout {
	g := m.cfg.Glyphs
	return layout{
		textW: m.textWidth(),
		upW:   max(grapheme.Width(g.Up), grapheme.Width(g.Confirm)),
		downW: max(grapheme.Width(g.Down), grapheme.Width(g.Cancel)),
	}
}

func (m Model) textWidth() int {
	if m.cfg.Width > 0 {
		return m.cfg.Width
	}
	return max(m.mach.TextWidth(), 1)
}

// targetAt maps widget-local cell coordinates to a hit region. Hidden
// controls belong to the text region.
func (m Model) targetAt(x, y int) interaction.Target {
	l := m.layout()
	if y != 0 || x < 0 || x >= l.total() {
		return interaction.None
	}
	switch {
	case x < l.upX() || !m.out.controls:
		return interaction.Input
	case x < l.downX():
		return interaction.Up
	default:
		return interaction.Down
	}
}

// cursorAt maps a widget-local column inside the text to a field position.
func (m Model) cursorAt(x int) int {
	cl := m.fld.Clusters()
	start := m.editWindow(cl, m.fld.Cursor(), m.layout().textW)
	return start + grapheme.IndexAt(cl[start:], x)
}
