package numeric

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	m := New(Options{})

	require.Equal(t, 0.0, m.Value())
	require.True(t, math.IsInf(m.Min(), -1))
	require.True(t, math.IsInf(m.Max(), 1))
	require.Equal(t, 1.0, m.StepSize())
	require.False(t, m.ExplicitStep())
	require.Equal(t, 0, m.Digits())

	delay, interval := m.Timing()
	require.Equal(t, "500ms", delay.String())
	require.Equal(t, "33ms", interval.String())
	require.Zero(t, m.Version())
}

func TestNew_SeedsThroughSetters(t *testing.T) {
	a := DefaultAttrs()
	a.Min, a.Max, a.Value = 0, 10, 42
	a.Digits = 2
	a.Step = 0

	m := New(Options{Attrs: &a})
	require.Equal(t, 10.0, m.Value(), "seeded value is clamped")
	require.Equal(t, 0.01, m.StepSize())
	require.False(t, m.ExplicitStep())
	require.Zero(t, m.Version())

	a.Step = 0.5
	m = New(Options{Attrs: &a})
	require.Equal(t, 0.5, m.StepSize())
	require.True(t, m.ExplicitStep())

	b := DefaultAttrs()
	m = New(Options{Attrs: &b})
	require.False(t, m.ExplicitStep(), "default step equals the auto-step")
	m.SetDigits(1)
	require.Equal(t, 0.1, m.StepSize())
}

func TestSetAttribute_Value(t *testing.T) {
	m := New(Options{})
	m.SetMin(0)
	m.SetMax(10)

	res, err := m.SetAttribute("value", " 7.5 ")
	require.NoError(t, err)
	require.True(t, res.Accepted())
	require.True(t, res.ValueChanged())
	require.Equal(t, 7.5, m.Value())

	res, err = m.SetAttribute("value", "99")
	require.NoError(t, err)
	require.True(t, res.Accepted())
	require.True(t, res.Clamped)
	require.Equal(t, 10.0, m.Value())
}

func TestSetAttribute_RevertsInvalid(t *testing.T) {
	tests := []struct {
		name string
		attr string
		raw  string
	}{
		{name: "empty value", attr: "value", raw: ""},
		{name: "garbage value", attr: "value", raw: "12abc"},
		{name: "nan min", attr: "min", raw: "NaN"},
		{name: "zero step", attr: "step", raw: "0"},
		{name: "infinite step", attr: "step", raw: "Infinity"},
		{name: "negative digits", attr: "digits", raw: "-1"},
		{name: "fractional digits", attr: "digits", raw: "1.5"},
		{name: "too many digits", attr: "digits", raw: "101"},
		{name: "zero delay", attr: "delay", raw: "0"},
		{name: "fractional interval", attr: "interval", raw: "2.5"},
		{name: "hex", attr: "value", raw: "0x10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Options{})
			before := m.Attrs()

			res, err := m.SetAttribute(tt.attr, tt.raw)
			require.NoError(t, err)
			require.Equal(t, Reverted, res.Status)
			require.Empty(t, res.Changed)
			require.Equal(t, before, m.Attrs())
			require.Zero(t, m.Version())
		})
	}
}

func TestSetAttribute_RevertIsIdempotent(t *testing.T) {
	m := New(Options{})
	m.SetDigits(3)
	v := m.Version()

	for i := 0; i < 2; i++ {
		res, err := m.SetAttribute("digits", "-4")
		require.NoError(t, err)
		require.Equal(t, Reverted, res.Status)
		require.Equal(t, 3.0, res.Value)
		require.Equal(t, 3, m.Digits())
		require.Equal(t, v, m.Version())
	}
}

func TestSetAttribute_RevertLogs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	m := New(Options{Logger: &log})

	_, err := m.SetAttribute("interval", "fast")
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"level":"info"`)
	require.Contains(t, buf.String(), `"attr":"interval"`)
	require.Contains(t, buf.String(), `"kept":"33"`)
}

func TestSetAttribute_UnknownName(t *testing.T) {
	m := New(Options{})
	_, err := m.SetAttribute("colour", "1")
	require.ErrorIs(t, err, ErrUnknownAttribute)

	_, err = m.RemoveAttribute("colour")
	require.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestBounds_ReclampValue(t *testing.T) {
	m := New(Options{})
	m.SetValue(5)

	res := m.SetMax(3)
	require.True(t, res.Accepted())
	require.Equal(t, []Attr{AttrMax, AttrValue}, res.Changed)
	require.Equal(t, 3.0, m.Value())

	res = m.SetMin(4)
	require.True(t, res.Clamped, "min above max is pulled down to max")
	require.Equal(t, 3.0, m.Min())
	require.Equal(t, 3.0, m.Value())
}

func TestBounds_ReclampBypassesValidate(t *testing.T) {
	calls := 0
	m := New(Options{Validate: func(v float64, spinning bool) (float64, bool) {
		calls++
		return v, true
	}})
	m.SetValue(8)
	m.SetMax(2)

	require.Equal(t, 2.0, m.Value())
	require.Zero(t, calls)
}

func TestBounds_InfinityAllowed(t *testing.T) {
	m := New(Options{})
	m.SetMin(0)

	res, err := m.SetAttribute("min", "-Infinity")
	require.NoError(t, err)
	require.True(t, res.Accepted())
	require.True(t, math.IsInf(m.Min(), -1))

	res = m.SetMin(math.Inf(1))
	require.Equal(t, Reverted, res.Status)
	res = m.SetMax(math.Inf(-1))
	require.Equal(t, Reverted, res.Status)
}

func TestAutoStep_FollowsDigits(t *testing.T) {
	m := New(Options{})

	res := m.SetDigits(2)
	require.Equal(t, []Attr{AttrDigits, AttrStep}, res.Changed)
	require.Equal(t, 0.01, m.StepSize())

	m.SetDigits(0)
	require.Equal(t, 1.0, m.StepSize())

	m.SetStep(5)
	m.SetDigits(3)
	require.Equal(t, 5.0, m.StepSize(), "explicit step survives digits changes")

	res, err := m.RemoveAttribute("step")
	require.NoError(t, err)
	require.True(t, res.Accepted())
	require.Equal(t, 0.001, m.StepSize())
	require.False(t, m.ExplicitStep())
}

func TestRemoveAttribute_NonStepReverts(t *testing.T) {
	m := New(Options{})
	m.SetValue(4)

	res, err := m.RemoveAttribute("value")
	require.NoError(t, err)
	require.Equal(t, Reverted, res.Status)
	require.Equal(t, 4.0, m.Value())
}

func TestVersion_OnlyEffectiveChanges(t *testing.T) {
	m := New(Options{})
	m.SetValue(1)
	require.Equal(t, uint64(1), m.Version())

	m.SetValue(1)
	m.SetDelay(500)
	require.Equal(t, uint64(1), m.Version())
}

func TestInvariant_BoundsHoldAcrossWrites(t *testing.T) {
	m := New(Options{})
	writes := []struct {
		attr string
		raw  string
	}{
		{"value", "15"}, {"max", "10"}, {"min", "12"}, {"value", "-3"},
		{"min", "-Infinity"}, {"value", "-3"}, {"step", "4"}, {"max", "NaN"},
		{"min", "-1"}, {"value", "x"}, {"max", "-5"}, {"value", "100"},
	}

	check := func() {
		t.Helper()
		require.LessOrEqual(t, m.Min(), m.Value())
		require.LessOrEqual(t, m.Value(), m.Max())
	}
	for _, w := range writes {
		_, err := m.SetAttribute(w.attr, w.raw)
		require.NoError(t, err)
		check()
		m.Step(Up)
		check()
		m.Step(Down)
		check()
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		nan  bool
	}{
		{raw: "1", want: 1},
		{raw: " -2.5 ", want: -2.5},
		{raw: "1e3", want: 1000},
		{raw: "Infinity", want: math.Inf(1)},
		{raw: "-Infinity", want: math.Inf(-1)},
		{raw: "", nan: true},
		{raw: "   ", nan: true},
		{raw: "inf", nan: true},
		{raw: "1_000", nan: true},
		{raw: "12px", nan: true},
	}

	for _, tt := range tests {
		got := ParseNumber(tt.raw)
		if tt.nan {
			require.True(t, math.IsNaN(got), "ParseNumber(%q)=%v", tt.raw, got)
			continue
		}
		require.Equal(t, tt.want, got, "ParseNumber(%q)", tt.raw)
	}
}
