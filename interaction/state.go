package interaction

import (
	"math"

	"github.com/iw2rmb/numspin/numeric"
)

// Mode is the top-level interaction state.
type Mode uint8

const (
	Idle Mode = iota
	Hovering
	Editing
	Spinning
)

func (m Mode) String() string {
	switch m {
	case Hovering:
		return "hovering"
	case Editing:
		return "editing"
	case Spinning:
		return "spinning"
	default:
		return "idle"
	}
}

// Target is a hit region of the widget.
type Target uint8

const (
	None Target = iota
	// Input is the text area.
	Input
	// Up is the top control: increment while spinning, confirm while editing.
	Up
	// Down is the bottom control: decrement or cancel.
	Down
)

func (t Target) String() string {
	switch t {
	case Input:
		return "input"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// IsControl reports whether t is one of the two buttons.
func (t Target) IsControl() bool { return t == Up || t == Down }

func (t Target) dir() numeric.Direction {
	if t == Down {
		return numeric.Down
	}
	return numeric.Up
}

// Phase of a spin.
type Phase uint8

const (
	InitialDelay Phase = iota
	Repeating
)

// Source is the device driving a spin.
type Source uint8

const (
	Pointer Source = iota
	Keyboard
)

// Key is a key the engine reacts to. Hosts map their own key bindings onto
// these.
type Key uint8

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyArrowUp
	KeyArrowDown
)

func (k Key) arrow() (numeric.Direction, bool) {
	switch k {
	case KeyArrowUp:
		return numeric.Up, true
	case KeyArrowDown:
		return numeric.Down, true
	default:
		return 0, false
	}
}

// State is the complete interaction state of one widget.
type State struct {
	Mode Mode

	// Inside is set while the pointer is over the widget.
	Inside bool
	// Over is the region under the pointer.
	Over Target
	// Pressed is the control held down while editing.
	Pressed Target

	Dir    numeric.Direction
	Phase  Phase
	Source Source
	Key    Key // arrow key driving a keyboard spin

	Text        string
	Invalid     bool // Text is not a finite number
	OutOfBounds bool // Text parses but lies outside [min, max]
	Beep        bool // a confirm was refused

	// PointerFocus is set between a press on the text and its release. Focus
	// notifications arriving meanwhile are not edit requests.
	PointerFocus bool
}

// Env is the read-only context of one reduction.
type Env struct {
	Spins       bool
	Confirms    bool
	Keyboards   bool
	BlurCancel  bool
	ShowButtons bool

	Min, Max float64
	// Parse converts edit text to a number, NaN when it is not one.
	Parse func(string) float64
	// EditText is the current value rendered for editing.
	EditText string
}

// DefaultEnv enables every interaction over an unbounded range.
func DefaultEnv() Env {
	return Env{
		Spins:     true,
		Confirms:  true,
		Keyboards: true,
		Min:       math.Inf(-1),
		Max:       math.Inf(1),
	}
}

func (e Env) parse(text string) float64 {
	if e.Parse == nil {
		return numeric.ParseNumber(text)
	}
	return e.Parse(text)
}

// rest returns s in the resting mode for the pointer position.
func rest(s State) State {
	s.Mode = Idle
	if s.Inside {
		s.Mode = Hovering
	}
	s.Dir, s.Phase, s.Source, s.Key = 0, InitialDelay, Pointer, KeyNone
	s.Pressed = None
	return s
}
