// Package spin runs the hold-to-repeat loop of a spinner: one immediate
// step, a pause of delay, then a step every interval until released or a
// bound is reached.
//
// The scheduler owns no timers. Every arm returns a Wake describing the
// timer the host must start, identified by a Handle. The host hands the
// Handle back to Fire when its timer expires; handles invalidated by Stop or
// by a newer arm are ignored, so a stale timer can never step the value.
package spin

import (
	"time"

	"github.com/iw2rmb/numspin/numeric"
)

// Phase is the scheduler state.
type Phase uint8

const (
	Idle Phase = iota
	// Armed waits for the initial delay to elapse.
	Armed
	Repeating
)

func (p Phase) String() string {
	switch p {
	case Armed:
		return "armed"
	case Repeating:
		return "repeating"
	default:
		return "idle"
	}
}

// Handle identifies one armed timer. The zero Handle is never issued.
type Handle uint64

// Wake is a timer request. A zero Wake means no timer is needed.
type Wake struct {
	Handle Handle
	After  time.Duration
}

// Armed reports whether the host must start a timer.
func (w Wake) Armed() bool { return w.Handle != 0 }

// Stepper is the value the scheduler moves.
type Stepper interface {
	Step(dir numeric.Direction) numeric.StepResult
	Timing() (delay, interval time.Duration)
}

// Step is delivered to Notify after every step that changed the value.
type Step struct {
	Dir      numeric.Direction
	Value    float64
	Spinning bool
}

// Notify receives spin notifications.
type Notify func(Step)

// Scheduler is a single-widget spin loop. It is not safe for concurrent use;
// the host drives it from its event loop.
type Scheduler struct {
	stepper Stepper
	notify  Notify

	phase  Phase
	dir    numeric.Direction
	handle Handle
	next   Handle
}

func New(s Stepper, notify Notify) *Scheduler {
	return &Scheduler{stepper: s, notify: notify}
}

func (s *Scheduler) Phase() Phase { return s.phase }

// Direction is the direction of the active spin, 0 when idle.
func (s *Scheduler) Direction() numeric.Direction {
	if s.phase == Idle {
		return 0
	}
	return s.dir
}

// Start cancels any active spin, steps once in dir and, unless that step
// ended the spin, arms the initial delay.
func (s *Scheduler) Start(dir numeric.Direction) Wake {
	s.Stop()
	if !s.step(dir) {
		return Wake{}
	}
	delay, _ := s.stepper.Timing()
	s.phase, s.dir = Armed, dir
	return s.arm(delay)
}

// Redirect switches an active spin to dir: one step, then repeats at full
// speed with no initial delay.
func (s *Scheduler) Redirect(dir numeric.Direction) Wake {
	s.Stop()
	if !s.step(dir) {
		return Wake{}
	}
	_, interval := s.stepper.Timing()
	s.phase, s.dir = Repeating, dir
	return s.arm(interval)
}

// SpinOnce performs exactly one step and arms nothing. Keyboard spinning
// calls it once per key repeat.
func (s *Scheduler) SpinOnce(dir numeric.Direction) numeric.StepResult {
	s.Stop()
	r := s.stepper.Step(dir)
	s.report(r)
	return r
}

// Fire runs the step for an expired timer. Unknown or stale handles do
// nothing and return a zero Wake.
func (s *Scheduler) Fire(h Handle) Wake {
	if h == 0 || h != s.handle || s.phase == Idle {
		return Wake{}
	}
	dir := s.dir
	s.handle = 0
	if !s.step(dir) {
		s.phase, s.dir = Idle, 0
		return Wake{}
	}
	_, interval := s.stepper.Timing()
	s.phase = Repeating
	return s.arm(interval)
}

// Stop cancels the active spin. It is idempotent.
func (s *Scheduler) Stop() {
	s.phase, s.dir, s.handle = Idle, 0, 0
}

// Pending is the handle of the armed timer, 0 when none.
func (s *Scheduler) Pending() Handle { return s.handle }

func (s *Scheduler) arm(after time.Duration) Wake {
	s.next++
	s.handle = s.next
	return Wake{Handle: s.handle, After: after}
}

// step moves the value and reports whether spinning may continue.
func (s *Scheduler) step(dir numeric.Direction) bool {
	r := s.stepper.Step(dir)
	s.report(r)
	return r.Continue()
}

func (s *Scheduler) report(r numeric.StepResult) {
	if r.Changed() && s.notify != nil {
		s.notify(Step{Dir: r.Dir, Value: r.Value, Spinning: true})
	}
}
