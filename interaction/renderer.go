package interaction

import "github.com/iw2rmb/numspin/numeric"

// Renderer reflects the interaction state. Implementations must return
// quickly; they run on the event loop.
type Renderer interface {
	ShowControls(visible bool)
	SetDisplayText(text string)
	SetVisualState(tag VisualTag)
	// MeasureText returns the display width of text in the renderer's units.
	MeasureText(text string) int
}

// ChangeEvent is emitted after every committed change of value.
type ChangeEvent struct {
	Value    float64
	Spinning bool
	// Dir is the spin direction; 0 for edits and attribute writes.
	Dir numeric.Direction
}

// Correction reports an attribute write that was reverted.
type Correction struct {
	Attr string
	Raw  string
	// Kept is the value the attribute still holds.
	Kept string
}
