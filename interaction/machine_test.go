package interaction

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/numspin/format"
	"github.com/iw2rmb/numspin/numeric"
)

type fakeRenderer struct {
	controls bool
	text     string
	tag      VisualTag
}

func (r *fakeRenderer) ShowControls(v bool)        { r.controls = v }
func (r *fakeRenderer) SetDisplayText(s string)    { r.text = s }
func (r *fakeRenderer) SetVisualState(t VisualTag) { r.tag = t }
func (r *fakeRenderer) MeasureText(s string) int   { return len([]rune(s)) }

type harness struct {
	r       *fakeRenderer
	m       *Machine
	changes []ChangeEvent
	fixes   []Correction
}

func newHarness(t *testing.T, mutate func(*Options)) *harness {
	t.Helper()
	h := &harness{r: &fakeRenderer{}}
	a := numeric.DefaultAttrs()
	a.Min, a.Max, a.Value = 0, 10, 5
	a.Delay, a.Interval = 500, 100
	opt := Options{
		Attrs:       &a,
		OnChange:    func(ev ChangeEvent) { h.changes = append(h.changes, ev) },
		OnCorrected: func(c Correction) { h.fixes = append(h.fixes, c) },
	}
	if mutate != nil {
		mutate(&opt)
	}
	h.m = New(h.r, opt)
	return h
}

func TestMachine_InitialRender(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.Units = " kg" })
	require.Equal(t, "5 kg", h.r.text)
	require.False(t, h.r.controls)
	require.Equal(t, "spinner-idle", h.r.tag.String())

	h = newHarness(t, func(o *Options) { o.Flags.ShowButtons = true })
	require.True(t, h.r.controls)
}

func TestMachine_ConfirmEdit(t *testing.T) {
	h := newHarness(t, nil)

	h.m.Dispatch(FocusIn{})
	require.Equal(t, "5", h.r.text)
	require.Equal(t, "confirm-idle", h.r.tag.String())

	h.m.Dispatch(TextChanged{Text: "7"})
	require.Equal(t, 5.0, h.m.Value(), "edits do not touch the model before confirm")

	h.m.Dispatch(KeyDown{Key: KeyEnter})
	require.Equal(t, 7.0, h.m.Value())
	require.Equal(t, "7", h.r.text)
	require.Equal(t, []ChangeEvent{{Value: 7}}, h.changes)
	require.Equal(t, Idle, h.m.State().Mode)
}

func TestMachine_ConfirmClampsOutOfBounds(t *testing.T) {
	h := newHarness(t, nil)
	h.m.Dispatch(FocusIn{})
	h.m.Dispatch(TextChanged{Text: "40"})
	require.True(t, h.r.tag.OutOfBounds)

	h.m.Dispatch(KeyDown{Key: KeyEnter})
	require.Equal(t, 10.0, h.m.Value())
	require.False(t, h.r.tag.OutOfBounds)
}

func TestMachine_ConfirmVetoed(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.Validate = func(v float64, spinning bool) (float64, bool) { return v, spinning }
	})
	h.m.Dispatch(FocusIn{})
	h.m.Dispatch(TextChanged{Text: "8"})
	h.m.Dispatch(KeyDown{Key: KeyEnter})

	require.Equal(t, Idle, h.m.State().Mode)
	require.Equal(t, 5.0, h.m.Value())
	require.Empty(t, h.changes)
	require.Equal(t, "5", h.r.text)
}

func TestMachine_ConfirmNaNFromValidate(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.Validate = func(float64, bool) (float64, bool) { return math.NaN(), true }
	})
	h.m.Dispatch(FocusIn{})
	h.m.Dispatch(TextChanged{Text: "8"})
	h.m.Dispatch(KeyDown{Key: KeyEnter})

	require.Equal(t, Idle, h.m.State().Mode)
	require.Equal(t, 5.0, h.m.Value())
	require.Empty(t, h.changes)
	require.Equal(t, "5", h.r.text)
}

func TestMachine_LocaleEditing(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		a := numeric.DefaultAttrs()
		a.Digits, a.Value = 1, 2.5
		o.Attrs = &a
		p := format.DefaultProfile()
		p.UseLocale, p.Locale = true, "de-DE"
		o.Profile = &p
	})
	require.Equal(t, "2,5", h.r.text)

	h.m.Dispatch(FocusIn{})
	h.m.Dispatch(TextChanged{Text: "12.5"})
	require.True(t, h.m.State().Invalid)

	h.m.Dispatch(TextChanged{Text: "12,5"})
	require.False(t, h.m.State().Invalid)
	h.m.Dispatch(KeyDown{Key: KeyEnter})
	require.Equal(t, 12.5, h.m.Value())
	require.Equal(t, "12,5", h.r.text)
}

func TestMachine_PointerSpin(t *testing.T) {
	h := newHarness(t, nil)
	h.m.Dispatch(ControlEnter{Target: Up})

	w := h.m.Dispatch(PointerDown{Target: Up})
	require.True(t, w.Armed())
	require.Equal(t, 500*time.Millisecond, w.After)
	require.Equal(t, 6.0, h.m.Value())
	require.Equal(t, "6", h.r.text)

	w = h.m.Dispatch(SpinTick{Handle: w.Handle})
	require.Equal(t, 100*time.Millisecond, w.After)
	require.Equal(t, 7.0, h.m.Value())
	require.Equal(t, "spinner-spin-top", h.r.tag.String())

	h.m.Dispatch(PointerUp{Target: Up})
	require.Zero(t, h.m.Scheduler().Pending())
	require.Zero(t, h.m.Dispatch(SpinTick{Handle: w.Handle}).Handle, "stale tick")
	require.Equal(t, 7.0, h.m.Value())

	require.Len(t, h.changes, 2)
	for _, c := range h.changes {
		require.True(t, c.Spinning)
		require.Equal(t, numeric.Up, c.Dir)
	}
}

func TestMachine_PointerSpinStopsAtBound(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		a := numeric.DefaultAttrs()
		a.Min, a.Max, a.Value = 0, 10, 9
		o.Attrs = &a
	})
	w := h.m.Dispatch(PointerDown{Target: Up})
	require.False(t, w.Armed())
	require.Equal(t, 10.0, h.m.Value())
	require.Equal(t, Spinning, h.m.State().Mode, "held until release")

	h.m.Dispatch(PointerUp{Target: Up})
	require.Equal(t, Idle, h.m.State().Mode)
	require.Len(t, h.changes, 1)
}

func TestMachine_KeySpin(t *testing.T) {
	h := newHarness(t, nil)
	for i := 0; i < 3; i++ {
		w := h.m.Dispatch(KeyDown{Key: KeyArrowDown})
		require.False(t, w.Armed())
	}
	require.Equal(t, 2.0, h.m.Value())
	require.Equal(t, "spinner-spin-bot", h.r.tag.String())

	h.m.Dispatch(KeyUp{Key: KeyArrowDown})
	require.Equal(t, "spinner-idle", h.r.tag.String())
	require.Len(t, h.changes, 3)
}

func TestMachine_SetAttribute(t *testing.T) {
	h := newHarness(t, nil)

	require.NoError(t, h.m.SetAttribute("max", "3"))
	require.Equal(t, 3.0, h.m.Value())
	require.Equal(t, "3", h.r.text)
	require.Equal(t, []ChangeEvent{{Value: 3}}, h.changes)

	require.NoError(t, h.m.SetAttribute("digits", "2"))
	require.Equal(t, "3.00", h.r.text)
	require.Equal(t, 0.01, h.m.Model().StepSize())

	require.NoError(t, h.m.SetAttribute("interval", "0"))
	require.Equal(t, []Correction{{Attr: "interval", Raw: "0", Kept: "100"}}, h.fixes)

	require.NoError(t, h.m.SetAttribute("notation", "roman"))
	require.Len(t, h.fixes, 2)
	require.Equal(t, "standard", h.fixes[1].Kept)

	err := h.m.SetAttribute("colour", "red")
	require.ErrorIs(t, err, ErrUnknownAttribute)
	err = h.m.SetAttribute("valu", "1")
	require.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestMachine_StringAndBoolAttributes(t *testing.T) {
	h := newHarness(t, nil)

	require.NoError(t, h.m.SetAttribute(AttrLocale, "en-US"))
	require.NoError(t, h.m.SetAttribute(AttrCurrency, "usd"))
	require.NoError(t, h.m.SetAttribute(AttrUnits, "kg"))
	require.Equal(t, "$5/kg", h.r.text)

	require.NoError(t, h.m.SetAttribute(AttrCurrency, "XYZW"))
	require.Equal(t, "USD", h.fixes[0].Kept)

	require.NoError(t, h.m.RemoveAttribute(AttrLocale))
	require.Equal(t, "5kg", h.r.text)

	require.NoError(t, h.m.SetAttribute(AttrShowButtons, ""))
	require.True(t, h.m.Flags().ShowButtons)
	require.True(t, h.r.controls)

	require.NoError(t, h.m.SetAttribute(AttrNoSpin, ""))
	require.False(t, h.r.controls)
	require.NoError(t, h.m.RemoveAttribute(AttrNoSpin))
	require.True(t, h.r.controls)

	require.ErrorIs(t, h.m.RemoveAttribute("colour"), ErrUnknownAttribute)
}

func TestMachine_NoSpinStopsActiveSpin(t *testing.T) {
	h := newHarness(t, nil)
	w := h.m.Dispatch(PointerDown{Target: Down})
	require.True(t, w.Armed())

	require.NoError(t, h.m.SetAttribute(AttrNoSpin, ""))
	require.Equal(t, Idle, h.m.State().Mode)
	require.Zero(t, h.m.Scheduler().Pending())
}

func TestMachine_TextWidth(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		a := numeric.DefaultAttrs()
		a.Min, a.Max, a.Digits = -100, 1000, 1
		o.Attrs = &a
		o.Units = " m"
	})
	require.Equal(t, len("-100.0")+2, h.m.TextWidth())

	require.NoError(t, h.m.SetAttribute("min", "-Infinity"))
	require.Equal(t, len("1000.0")+2, h.m.TextWidth())
	require.True(t, math.IsInf(h.m.Model().Min(), -1))
}
