// Package field is the single-line text buffer behind the stepper's edit
// mode. Positions are grapheme indexes in [0, Len()].
package field

import (
	"strings"

	"github.com/iw2rmb/numspin/internal/grapheme"
)

// Range is a half-open grapheme range [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Normalize orders Start <= End.
func (r Range) Normalize() Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

type Options struct {
	// HistoryLimit caps the undo stack. Zero disables undo.
	HistoryLimit int
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Field holds edit text, a cursor and an optional selection.
type Field struct {
	clusters []string
	cursor   int
	sel      selectionState
	version  uint64

	opt  Options
	hist historyState
}

// New returns a field holding text with the cursor at the end.
func New(text string, opt Options) *Field {
	f := &Field{opt: opt}
	f.clusters = grapheme.Split(singleLine(text))
	f.cursor = len(f.clusters)
	return f
}

func (f *Field) Text() string    { return grapheme.Join(f.clusters, 0, len(f.clusters)) }
func (f *Field) Len() int        { return len(f.clusters) }
func (f *Field) Cursor() int     { return f.cursor }
func (f *Field) Version() uint64 { return f.version }

// Clusters returns a copy of the grapheme clusters.
func (f *Field) Clusters() []string {
	return append([]string(nil), f.clusters...)
}

// Reset replaces the text, selects all of it and drops the history. It is
// how an edit session starts.
func (f *Field) Reset(text string) {
	f.clusters = grapheme.Split(singleLine(text))
	f.cursor = len(f.clusters)
	f.sel = selectionState{}
	if f.cursor > 0 {
		f.sel = selectionState{active: true, anchor: 0, end: f.cursor}
	}
	f.hist = historyState{}
	f.version++
}

func (f *Field) SetCursor(pos int) {
	pos = f.clamp(pos)
	if pos == f.cursor && !f.sel.active {
		return
	}
	f.cursor = pos
	f.sel = selectionState{}
	f.version++
}

// Selection returns the normalized selection, if any.
func (f *Field) Selection() (Range, bool) {
	if !f.sel.active {
		return Range{}, false
	}
	r := Range{Start: f.sel.anchor, End: f.sel.end}.Normalize()
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects r and moves the cursor to its End. An empty range
// clears the selection.
func (f *Field) SetSelection(r Range) {
	r.Start, r.End = f.clamp(r.Start), f.clamp(r.End)
	next := selectionState{}
	if !r.IsEmpty() {
		next = selectionState{active: true, anchor: r.Start, end: r.End}
	}
	if next == f.sel && f.cursor == r.End {
		return
	}
	f.sel = next
	f.cursor = r.End
	f.version++
}

func (f *Field) ClearSelection() {
	if !f.sel.active {
		return
	}
	f.sel = selectionState{}
	f.version++
}

// InsertText inserts s at the cursor, replacing the selection. Line breaks
// are dropped.
func (f *Field) InsertText(s string) {
	s = singleLine(s)
	r, ok := f.Selection()
	if !ok {
		r = Range{Start: f.cursor, End: f.cursor}
	}
	if s == "" && r.IsEmpty() {
		return
	}
	f.replace(r, s)
}

// DeleteBackward applies backspace semantics.
func (f *Field) DeleteBackward() {
	if r, ok := f.Selection(); ok {
		f.replace(r, "")
		return
	}
	if f.cursor == 0 {
		return
	}
	f.replace(Range{Start: f.cursor - 1, End: f.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (f *Field) DeleteForward() {
	if r, ok := f.Selection(); ok {
		f.replace(r, "")
		return
	}
	if f.cursor == len(f.clusters) {
		return
	}
	f.replace(Range{Start: f.cursor, End: f.cursor + 1}, "")
}

func (f *Field) DeleteSelection() {
	if r, ok := f.Selection(); ok {
		f.replace(r, "")
	}
}

func (f *Field) replace(r Range, s string) {
	prev := f.snapshot()

	ins := grapheme.Split(s)
	next := make([]string, 0, len(f.clusters)-(r.End-r.Start)+len(ins))
	next = append(next, f.clusters[:r.Start]...)
	next = append(next, ins...)
	next = append(next, f.clusters[r.End:]...)

	// Re-split so combining marks merge with their base across the seam.
	text := grapheme.Join(next, 0, len(next))
	if text == prev.text {
		return
	}
	after := grapheme.Join(next, r.Start+len(ins), len(next))
	f.clusters = grapheme.Split(text)
	f.cursor = len(f.clusters) - grapheme.Count(after)
	f.sel = selectionState{}
	f.version++
	f.recordUndo(prev)
}

func (f *Field) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(f.clusters) {
		return len(f.clusters)
	}
	return pos
}

func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
