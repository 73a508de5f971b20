package interaction

import "math"

// Reduce computes the state following ev and the effects to execute. It is
// pure and total: events that mean nothing in the current state return s
// unchanged with no effects.
//
// Visual and control-visibility effects are derived by diffing the state
// before and after the event, so transitions only describe what they do.
func Reduce(s State, ev Event, env Env) (State, []Effect) {
	next, fx := reduce(s, ev, env)

	if was, now := ControlsVisible(s, env), ControlsVisible(next, env); was != now {
		fx = append(fx, ShowControls{Visible: now})
	}
	if was, now := Visual(s), Visual(next); was != now {
		fx = append(fx, SetVisual{Tag: now})
	}
	return next, fx
}

func reduce(s State, ev Event, env Env) (State, []Effect) {
	switch e := ev.(type) {
	case PointerEnter:
		return enter(s), nil

	case PointerLeave:
		s.Inside, s.Over = false, None
		switch {
		case s.Mode == Hovering:
			s.Mode = Idle
		case s.Mode == Spinning && s.Source == Pointer:
			return rest(s), []Effect{StopSpin{}}
		}
		return s, nil

	case ControlEnter:
		s = enter(s)
		s.Over = e.Target
		if s.Mode == Spinning && s.Source == Pointer && e.Target.IsControl() && e.Target.dir() != s.Dir {
			s.Dir, s.Phase = e.Target.dir(), Repeating
			return s, []Effect{RedirectSpin{Dir: s.Dir}}
		}
		return s, nil

	case ControlLeave:
		if s.Over == e.From {
			s.Over = e.To
		}
		if s.Mode == Spinning && s.Source == Pointer && !e.To.IsControl() {
			return rest(s), []Effect{StopSpin{}}
		}
		if s.Mode == Editing && s.Pressed == e.From {
			s.Pressed = None
		}
		return s, nil

	case PointerDown:
		return pointerDown(s, e.Target, env)

	case PointerUp:
		s.Beep, s.Pressed = false, None
		switch {
		case s.Mode == Spinning && s.Source == Pointer:
			return rest(s), []Effect{StopSpin{}}
		case s.PointerFocus:
			s.PointerFocus = false
			if e.Target == Input && (s.Mode == Idle || s.Mode == Hovering) {
				return startEditing(s, env)
			}
		}
		return s, nil

	case Click:
		if s.Mode != Editing || !env.Confirms || !e.Target.IsControl() {
			return s, nil
		}
		s.Pressed = None
		if e.Target == Up {
			return confirm(s, env, false)
		}
		return cancel(s)

	case FocusIn:
		if s.PointerFocus || !env.Keyboards {
			return s, nil
		}
		if s.Mode == Idle || s.Mode == Hovering {
			return startEditing(s, env)
		}
		return s, nil

	case FocusOut:
		s.PointerFocus = false
		switch {
		case s.Mode == Editing && (env.BlurCancel || s.Invalid):
			return cancel(s)
		case s.Mode == Editing:
			return confirm(s, env, true)
		case s.Mode == Spinning:
			return rest(s), []Effect{StopSpin{}}
		}
		return s, nil

	case KeyDown:
		return keyDown(s, e.Key, env)

	case KeyUp:
		switch {
		case s.Mode == Editing && e.Key == KeyEnter:
			s.Beep = false
		case s.Mode == Spinning && s.Source == Keyboard && e.Key == s.Key:
			return rest(s), []Effect{StopSpin{}}
		}
		return s, nil

	case TextChanged:
		if s.Mode != Editing {
			return s, nil
		}
		s.Text = e.Text
		s.Invalid, s.OutOfBounds = check(e.Text, env)
		return s, nil

	case SpinTick:
		if s.Mode != Spinning || s.Source != Pointer {
			return s, nil
		}
		s.Phase = Repeating
		return s, []Effect{FireSpin{Handle: e.Handle}}
	}
	return s, nil
}

func enter(s State) State {
	s.Inside = true
	if s.Mode == Idle {
		s.Mode = Hovering
	}
	return s
}

func pointerDown(s State, t Target, env Env) (State, []Effect) {
	switch s.Mode {
	case Idle, Hovering:
		switch {
		case t == Input && env.Keyboards:
			s.PointerFocus = true
		case t.IsControl() && env.Spins:
			s.Mode = Spinning
			s.Dir, s.Phase, s.Source, s.Key = t.dir(), InitialDelay, Pointer, KeyNone
			return s, []Effect{StartSpin{Dir: s.Dir}}
		}
	case Editing:
		if t.IsControl() && env.Confirms {
			s.Pressed = t
			if t == Up && s.Invalid {
				s.Beep = true
			}
		}
	}
	return s, nil
}

func keyDown(s State, k Key, env Env) (State, []Effect) {
	switch s.Mode {
	case Editing:
		switch k {
		case KeyEnter:
			return confirm(s, env, false)
		case KeyEscape:
			return cancel(s)
		}
	case Idle, Hovering:
		dir, ok := k.arrow()
		if !ok || !env.Spins {
			return s, nil
		}
		s.Mode = Spinning
		s.Dir, s.Phase, s.Source, s.Key = dir, InitialDelay, Keyboard, k
		return s, []Effect{SpinOnce{Dir: dir}}
	case Spinning:
		dir, ok := k.arrow()
		if !ok || s.Source != Keyboard {
			return s, nil
		}
		if k == s.Key {
			s.Phase = Repeating
		} else {
			s.Dir, s.Phase, s.Key = dir, InitialDelay, k
		}
		return s, []Effect{SpinOnce{Dir: dir}}
	}
	return s, nil
}

func startEditing(s State, env Env) (State, []Effect) {
	s.Mode = Editing
	s.Text = env.EditText
	s.Invalid, s.OutOfBounds = check(s.Text, env)
	s.Beep, s.Pressed = false, None
	return s, []Effect{DisplayText{Text: s.Text}}
}

// confirm commits the edit text. Invalid text beeps and stays in Editing,
// except on blur where leaving is unconditional and the edit is dropped.
func confirm(s State, env Env, blur bool) (State, []Effect) {
	n := env.parse(s.Text)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		if blur {
			return cancel(s)
		}
		s.Invalid, s.Beep = true, true
		return s, nil
	}
	s = leaveEditing(s)
	return s, []Effect{Commit{Value: n}, DisplayFormatted{}}
}

func cancel(s State) (State, []Effect) {
	return leaveEditing(s), []Effect{DisplayFormatted{}}
}

func leaveEditing(s State) State {
	s = rest(s)
	s.Text, s.Invalid, s.OutOfBounds, s.Beep = "", false, false, false
	return s
}

func check(text string, env Env) (invalid, outOfBounds bool) {
	n := env.parse(text)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return true, false
	}
	return false, n < env.Min || n > env.Max
}
