package numeric

import "math"

// Direction is the sign applied to the step size.
type Direction int8

const (
	Down Direction = -1
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// StepOutcome classifies a Step call.
type StepOutcome uint8

const (
	// StepApplied moved the value and spinning may continue.
	StepApplied StepOutcome = iota
	// StepTerminal moved the value onto the bound in the requested
	// direction; spinning should stop naturally.
	StepTerminal
	// StepVetoed means the validate hook rejected the candidate; nothing
	// changed and spinning should stop.
	StepVetoed
	// StepPinned means the value already sat on the bound, or the step was
	// lost to float rounding; nothing changed.
	StepPinned
)

func (o StepOutcome) String() string {
	switch o {
	case StepApplied:
		return "applied"
	case StepTerminal:
		return "terminal"
	case StepVetoed:
		return "vetoed"
	case StepPinned:
		return "pinned"
	default:
		return "unknown"
	}
}

// StepResult reports a Step call.
type StepResult struct {
	Outcome StepOutcome
	Dir     Direction
	Value   float64 // value after the call
}

// Changed reports whether the value was mutated.
func (r StepResult) Changed() bool {
	return r.Outcome == StepApplied || r.Outcome == StepTerminal
}

// Continue reports whether a spin loop may schedule another step.
func (r StepResult) Continue() bool { return r.Outcome == StepApplied }

// Step moves value by one step in dir. The validate hook is consulted with
// spinning=true and may transform or veto the candidate. A candidate at or
// beyond the bound in dir is clamped and reported as terminal.
func (m *Model) Step(dir Direction) StepResult {
	if dir != Up && dir != Down {
		return StepResult{Outcome: StepPinned, Dir: dir, Value: m.attrs.Value}
	}
	val := m.attrs.Value
	if m.atBound(val, dir) {
		return StepResult{Outcome: StepPinned, Dir: dir, Value: val}
	}

	candidate := val + math.Abs(m.attrs.Step)*float64(dir)
	if m.validate != nil {
		v, ok := m.validate(candidate, true)
		if !ok || math.IsNaN(v) {
			return StepResult{Outcome: StepVetoed, Dir: dir, Value: val}
		}
		candidate = v
	}
	// At large magnitudes the step can vanish in rounding.
	if candidate == val {
		return StepResult{Outcome: StepPinned, Dir: dir, Value: val}
	}

	outcome := StepApplied
	if m.atBound(candidate, dir) {
		outcome = StepTerminal
	}
	res := m.setValue(candidate, FormatNumber(candidate))
	if !res.Accepted() {
		return StepResult{Outcome: StepVetoed, Dir: dir, Value: m.attrs.Value}
	}
	return StepResult{Outcome: outcome, Dir: dir, Value: m.attrs.Value}
}

// Commit applies a confirmed edit: the validate hook runs with
// spinning=false, then the result is written through SetValue (which
// clamps). ok is false when the hook vetoed the candidate or returned NaN.
func (m *Model) Commit(candidate float64) (res Result, ok bool) {
	if m.validate != nil {
		v, accepted := m.validate(candidate, false)
		if !accepted || math.IsNaN(v) {
			return Result{Attr: AttrValue, Status: Accepted, Value: m.attrs.Value}, false
		}
		candidate = v
	}
	return m.SetValue(candidate), true
}

// atBound reports whether v is at or beyond the bound in dir.
func (m *Model) atBound(v float64, dir Direction) bool {
	if dir == Up {
		return v >= m.attrs.Max
	}
	return v <= m.attrs.Min
}
