package field

import "github.com/iw2rmb/numspin/internal/grapheme"

type snapshot struct {
	text   string
	cursor int
	sel    selectionState
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (f *Field) snapshot() snapshot {
	return snapshot{text: f.Text(), cursor: f.cursor, sel: f.sel}
}

func (f *Field) restore(s snapshot) {
	f.clusters = grapheme.Split(s.text)
	f.cursor = f.clamp(s.cursor)
	f.sel = selectionState{}
	if s.sel.active {
		anchor, end := f.clamp(s.sel.anchor), f.clamp(s.sel.end)
		if anchor != end {
			f.sel = selectionState{active: true, anchor: anchor, end: end}
		}
	}
}

func (f *Field) recordUndo(prev snapshot) {
	limit := f.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	f.hist.undo = append(f.hist.undo, prev)
	if len(f.hist.undo) > limit {
		f.hist.undo = f.hist.undo[len(f.hist.undo)-limit:]
	}
	f.hist.redo = nil
}

func (f *Field) CanUndo() bool { return len(f.hist.undo) > 0 }

func (f *Field) CanRedo() bool { return len(f.hist.redo) > 0 }

func (f *Field) Undo() bool {
	if len(f.hist.undo) == 0 {
		return false
	}

	cur := f.snapshot()
	i := len(f.hist.undo) - 1
	prev := f.hist.undo[i]
	f.hist.undo = f.hist.undo[:i]
	f.hist.redo = append(f.hist.redo, cur)

	f.restore(prev)
	f.version++
	return true
}

func (f *Field) Redo() bool {
	if len(f.hist.redo) == 0 {
		return false
	}

	cur := f.snapshot()
	i := len(f.hist.redo) - 1
	next := f.hist.redo[i]
	f.hist.redo = f.hist.redo[:i]
	f.hist.undo = append(f.hist.undo, cur)

	f.restore(next)
	f.version++
	return true
}
