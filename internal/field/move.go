package field

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // grow the selection instead of clearing it
}

func (f *Field) Move(m Move) {
	prevCursor := f.cursor
	prevSel := f.sel

	next := f.clamp(f.moveCursor(prevCursor, m))

	// Collapsing a selection without extending lands on its edge.
	if r, ok := f.Selection(); ok && !m.Extend && m.Unit == MoveGrapheme {
		switch m.Dir {
		case DirLeft:
			next = r.Start
		case DirRight:
			next = r.End
		}
	}

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return
	}
	f.cursor = next
	f.sel = nextSel
	f.version++
}

// SelectAll selects the whole text.
func (f *Field) SelectAll() {
	f.SetSelection(Range{Start: 0, End: len(f.clusters)})
}

func (f *Field) moveCursor(p int, m Move) int {
	switch {
	case m.Dir == DirHome:
		return 0
	case m.Dir == DirEnd:
		return len(f.clusters)
	case m.Unit == MoveLine && m.Dir == DirLeft:
		return 0
	case m.Unit == MoveLine && m.Dir == DirRight:
		return len(f.clusters)
	case m.Dir == DirLeft:
		return p - 1
	case m.Dir == DirRight:
		return p + 1
	default:
		return p
	}
}
