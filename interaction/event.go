package interaction

import "github.com/iw2rmb/numspin/spin"

// Event is an input delivered to the reducer.
type Event interface{ isEvent() }

type (
	// PointerEnter: the pointer moved onto the widget.
	PointerEnter struct{}
	// PointerLeave: the pointer left the widget.
	PointerLeave struct{}

	// ControlEnter: the pointer moved onto a region of the widget.
	ControlEnter struct{ Target Target }
	// ControlLeave: the pointer left From for To (None when it left the
	// widget's regions altogether).
	ControlLeave struct{ From, To Target }

	PointerDown struct{ Target Target }
	PointerUp   struct{ Target Target }
	// Click follows a PointerUp on the region that was pressed.
	Click struct{ Target Target }

	// FocusIn: the text field gained focus; a request to edit.
	FocusIn struct{}
	// FocusOut: the text field or the widget lost focus.
	FocusOut struct{}

	KeyDown struct{ Key Key }
	KeyUp   struct{ Key Key }

	// TextChanged carries the edit text after a keystroke.
	TextChanged struct{ Text string }

	// SpinTick: the timer of a spin.Wake expired.
	SpinTick struct{ Handle spin.Handle }
)

func (PointerEnter) isEvent() {}
func (PointerLeave) isEvent() {}
func (ControlEnter) isEvent() {}
func (ControlLeave) isEvent() {}
func (PointerDown) isEvent()  {}
func (PointerUp) isEvent()    {}
func (Click) isEvent()        {}
func (FocusIn) isEvent()      {}
func (FocusOut) isEvent()     {}
func (KeyDown) isEvent()      {}
func (KeyUp) isEvent()        {}
func (TextChanged) isEvent()  {}
func (SpinTick) isEvent()     {}
