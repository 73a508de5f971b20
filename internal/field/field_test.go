package field

import "testing"

func TestNew_CursorAtEnd(t *testing.T) {
	f := New("12.5", Options{})
	if got := f.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
	if _, ok := f.Selection(); ok {
		t.Fatalf("new field should have no selection")
	}
	if f.Version() != 0 {
		t.Fatalf("version=%d, want 0", f.Version())
	}
}

func TestInsertAndDelete(t *testing.T) {
	f := New("15", Options{})
	f.SetCursor(1)
	f.InsertText(".")
	if got := f.Text(); got != "1.5" {
		t.Fatalf("text after insert: got %q, want %q", got, "1.5")
	}
	if got := f.Cursor(); got != 2 {
		t.Fatalf("cursor after insert: got %d, want 2", got)
	}

	f.DeleteBackward()
	if got := f.Text(); got != "15" {
		t.Fatalf("text after backspace: got %q, want %q", got, "15")
	}
	f.DeleteForward()
	if got := f.Text(); got != "1" {
		t.Fatalf("text after delete: got %q, want %q", got, "1")
	}

	v := f.Version()
	f.DeleteForward()
	if f.Version() != v {
		t.Fatalf("delete at end should not bump version")
	}
}

func TestInsert_DropsLineBreaks(t *testing.T) {
	f := New("", Options{})
	f.InsertText("4\r\n2")
	if got := f.Text(); got != "42" {
		t.Fatalf("text=%q, want %q", got, "42")
	}
}

func TestReset_SelectsAll(t *testing.T) {
	f := New("", Options{HistoryLimit: 8})
	f.InsertText("9")
	f.Reset("3.25")

	r, ok := f.Selection()
	if !ok || r != (Range{Start: 0, End: 4}) {
		t.Fatalf("selection=%v ok=%v, want [0,4)", r, ok)
	}
	if f.CanUndo() {
		t.Fatalf("reset should drop history")
	}

	f.InsertText("7")
	if got := f.Text(); got != "7" {
		t.Fatalf("typing over the selection: got %q, want %q", got, "7")
	}
}

func TestMove_ExtendAndCollapse(t *testing.T) {
	f := New("-100", Options{})
	f.Move(Move{Unit: MoveGrapheme, Dir: DirHome})
	f.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	f.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})

	r, ok := f.Selection()
	if !ok || r != (Range{Start: 0, End: 2}) {
		t.Fatalf("selection=%v ok=%v, want [0,2)", r, ok)
	}

	f.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if _, ok := f.Selection(); ok {
		t.Fatalf("plain move should clear the selection")
	}
	if got := f.Cursor(); got != 0 {
		t.Fatalf("collapse left: cursor=%d, want 0", got)
	}

	f.Move(Move{Unit: MoveLine, Dir: DirRight, Extend: true})
	r, _ = f.Selection()
	if r != (Range{Start: 0, End: 4}) {
		t.Fatalf("line extend: selection=%v, want [0,4)", r)
	}
	f.DeleteBackward()
	if f.Text() != "" {
		t.Fatalf("delete selection left %q", f.Text())
	}
}

func TestMove_ClampsAtEdges(t *testing.T) {
	f := New("7", Options{})
	v := f.Version()
	f.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if f.Cursor() != 1 || f.Version() != v {
		t.Fatalf("move past end: cursor=%d version=%d", f.Cursor(), f.Version())
	}
}

func TestGraphemeAware(t *testing.T) {
	f := New("e\u0301", Options{})
	if f.Len() != 1 {
		t.Fatalf("len=%d, want 1", f.Len())
	}
	f.DeleteBackward()
	if f.Text() != "" {
		t.Fatalf("backspace should remove the whole cluster, got %q", f.Text())
	}

	f.InsertText("e")
	f.InsertText("\u0301")
	if f.Len() != 1 || f.Cursor() != 1 {
		t.Fatalf("combining mark should merge: len=%d cursor=%d", f.Len(), f.Cursor())
	}
}

func TestUndoRedo(t *testing.T) {
	f := New("1", Options{HistoryLimit: 2})
	f.InsertText("2")
	f.InsertText("3")
	f.InsertText("4")

	if !f.Undo() || f.Text() != "123" {
		t.Fatalf("undo: got %q, want %q", f.Text(), "123")
	}
	if !f.Undo() || f.Text() != "12" {
		t.Fatalf("undo: got %q, want %q", f.Text(), "12")
	}
	if f.Undo() {
		t.Fatalf("history limit should cap undo depth")
	}

	if !f.Redo() || f.Text() != "123" {
		t.Fatalf("redo: got %q, want %q", f.Text(), "123")
	}
	f.InsertText("9")
	if f.CanRedo() {
		t.Fatalf("a new edit should clear redo")
	}
}

func TestUndo_DisabledByDefault(t *testing.T) {
	f := New("", Options{})
	f.InsertText("5")
	if f.CanUndo() || f.Undo() {
		t.Fatalf("undo should be disabled without a history limit")
	}
}
