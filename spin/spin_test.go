package spin

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/numspin/numeric"
)

func model(value, min, max, step float64) *numeric.Model {
	a := numeric.DefaultAttrs()
	a.Value, a.Min, a.Max, a.Step = value, min, max, step
	a.Delay, a.Interval = 500, 100
	return numeric.New(numeric.Options{Attrs: &a})
}

type recorder struct{ steps []Step }

func (r *recorder) notify(s Step) { r.steps = append(r.steps, s) }

func TestStart_TerminalStepDoesNotArm(t *testing.T) {
	m := model(9, 0, 10, 1)
	var rec recorder
	s := New(m, rec.notify)

	w := s.Start(numeric.Up)
	require.False(t, w.Armed())
	require.Equal(t, Idle, s.Phase())
	require.Equal(t, 10.0, m.Value())
	require.Equal(t, []Step{{Dir: numeric.Up, Value: 10, Spinning: true}}, rec.steps)
}

func TestStart_ArmsDelayThenRepeatsAtInterval(t *testing.T) {
	m := model(0, 0, 100, 1)
	s := New(m, nil)

	w := s.Start(numeric.Up)
	require.True(t, w.Armed())
	require.Equal(t, 500*time.Millisecond, w.After)
	require.Equal(t, Armed, s.Phase())
	require.Equal(t, numeric.Up, s.Direction())
	require.Equal(t, 1.0, m.Value())

	w = s.Fire(w.Handle)
	require.True(t, w.Armed())
	require.Equal(t, 100*time.Millisecond, w.After)
	require.Equal(t, Repeating, s.Phase())
	require.Equal(t, 2.0, m.Value())

	w = s.Fire(w.Handle)
	require.Equal(t, 3.0, m.Value())
	require.Equal(t, w.Handle, s.Pending())
}

func TestStart_VetoedPerformsNoSteps(t *testing.T) {
	m := model(5, 0, 10, 1)
	m.SetValidate(func(float64, bool) (float64, bool) { return 0, false })
	var rec recorder
	s := New(m, rec.notify)

	w := s.Start(numeric.Down)
	require.False(t, w.Armed())
	require.Equal(t, Idle, s.Phase())
	require.Empty(t, rec.steps)
	require.Equal(t, 5.0, m.Value())
}

func TestStart_StepLostToRoundingStops(t *testing.T) {
	m := model(1e17, math.Inf(-1), math.Inf(1), 1)
	var rec recorder
	s := New(m, rec.notify)

	w := s.Start(numeric.Up)
	require.False(t, w.Armed())
	require.Equal(t, Idle, s.Phase())
	require.Empty(t, rec.steps)
}

func TestFire_StaleHandleIsNoop(t *testing.T) {
	m := model(0, 0, 100, 1)
	s := New(m, nil)

	first := s.Start(numeric.Up)
	s.Stop()
	require.False(t, s.Fire(first.Handle).Armed())
	require.Equal(t, 1.0, m.Value())

	second := s.Start(numeric.Up)
	require.NotEqual(t, first.Handle, second.Handle)
	require.False(t, s.Fire(first.Handle).Armed(), "handle from a previous arm")
	require.Equal(t, 2.0, m.Value())

	s.Fire(second.Handle)
	require.Equal(t, 3.0, m.Value())
	require.False(t, s.Fire(0).Armed())
}

func TestStop_Idempotent(t *testing.T) {
	s := New(model(0, 0, 10, 1), nil)
	s.Stop()
	s.Start(numeric.Up)
	s.Stop()
	s.Stop()
	require.Equal(t, Idle, s.Phase())
	require.Zero(t, s.Direction())
	require.Zero(t, s.Pending())
}

func TestSpin_TerminatesExactlyAtMax(t *testing.T) {
	for _, start := range []float64{0, 0.1, 3.3, 6.99} {
		m := model(start, 0, 10, 0.75)
		var rec recorder
		s := New(m, rec.notify)

		w := s.Start(numeric.Up)
		for i := 0; w.Armed(); i++ {
			require.Less(t, i, 100)
			w = s.Fire(w.Handle)
		}
		require.Equal(t, Idle, s.Phase())
		require.Equal(t, 10.0, m.Value(), "start=%v", start)

		n := len(rec.steps)
		require.Equal(t, 10.0, rec.steps[n-1].Value)
		require.False(t, s.Fire(w.Handle).Armed())
		require.Len(t, rec.steps, n, "no steps after self-stop")
	}
}

func TestRedirect_SkipsInitialDelay(t *testing.T) {
	m := model(5, 0, 10, 1)
	s := New(m, nil)

	up := s.Start(numeric.Up)
	require.Equal(t, 6.0, m.Value())

	down := s.Redirect(numeric.Down)
	require.Equal(t, 5.0, m.Value())
	require.Equal(t, Repeating, s.Phase())
	require.Equal(t, numeric.Down, s.Direction())
	require.Equal(t, 100*time.Millisecond, down.After)

	require.False(t, s.Fire(up.Handle).Armed())
	require.Equal(t, 5.0, m.Value())
}

func TestSpinOnce_NeverArms(t *testing.T) {
	m := model(0, 0, 2, 1)
	var rec recorder
	s := New(m, rec.notify)

	r := s.SpinOnce(numeric.Up)
	require.Equal(t, numeric.StepApplied, r.Outcome)
	require.Equal(t, Idle, s.Phase())
	require.Zero(t, s.Pending())

	r = s.SpinOnce(numeric.Up)
	require.Equal(t, numeric.StepTerminal, r.Outcome)
	r = s.SpinOnce(numeric.Up)
	require.Equal(t, numeric.StepPinned, r.Outcome)
	require.Len(t, rec.steps, 2)
}
