package interaction

import "strings"

// ControlSet names the pair of controls on display.
type ControlSet uint8

const (
	SpinnerControls ControlSet = iota
	ConfirmControls
)

// VisualState is the icon state of the controls.
type VisualState uint8

const (
	VisualIdle VisualState = iota
	VisualHover
	// VisualActive: control pressed, spin waiting for its initial delay.
	VisualActive
	// VisualSpin: spinning at full speed.
	VisualSpin
	// VisualKey: first step of a keyboard spin.
	VisualKey
)

// VisualTag selects the visual representation of the widget.
type VisualTag struct {
	Controls ControlSet
	State    VisualState
	Button   Target // Up, Down or None

	Invalid     bool
	OutOfBounds bool
	Beep        bool
}

// String names the icon: spinner-idle, spinner-hover-top, confirm-active-bot.
func (v VisualTag) String() string {
	var b strings.Builder
	if v.Controls == ConfirmControls {
		b.WriteString("confirm")
	} else {
		b.WriteString("spinner")
	}
	b.WriteByte('-')
	switch v.State {
	case VisualHover:
		b.WriteString("hover")
	case VisualActive:
		b.WriteString("active")
	case VisualSpin:
		b.WriteString("spin")
	case VisualKey:
		b.WriteString("key")
	default:
		b.WriteString("idle")
		return b.String()
	}
	switch v.Button {
	case Up:
		b.WriteString("-top")
	case Down:
		b.WriteString("-bot")
	}
	return b.String()
}

// Visual derives the tag for s.
func Visual(s State) VisualTag {
	tag := VisualTag{
		Invalid:     s.Invalid,
		OutOfBounds: s.OutOfBounds,
		Beep:        s.Beep,
	}
	switch s.Mode {
	case Spinning:
		tag.Button = Up
		if s.Dir < 0 {
			tag.Button = Down
		}
		switch {
		case s.Phase == Repeating:
			tag.State = VisualSpin
		case s.Source == Keyboard:
			tag.State = VisualKey
		default:
			tag.State = VisualActive
		}
		return tag
	case Editing:
		tag.Controls = ConfirmControls
		if s.Pressed.IsControl() {
			tag.State, tag.Button = VisualActive, s.Pressed
			return tag
		}
	}
	if s.Over.IsControl() {
		tag.State, tag.Button = VisualHover, s.Over
	}
	return tag
}

// ControlsVisible reports whether the controls are shown in s.
func ControlsVisible(s State, env Env) bool {
	switch s.Mode {
	case Editing:
		return env.Confirms
	case Spinning:
		return true
	default:
		return env.Spins && (env.ShowButtons || s.Inside)
	}
}
