package interaction

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/numspin/format"
	"github.com/iw2rmb/numspin/numeric"
	"github.com/iw2rmb/numspin/spin"
)

// Flags are the boolean behaviour switches of a widget.
type Flags struct {
	// BlurCancel makes a plain blur discard the edit instead of confirming.
	BlurCancel bool
	// ShowButtons keeps the spin controls visible without hover.
	ShowButtons bool
	NoSpin      bool
	NoConfirm   bool
	// NoKeys disables text entry; the widget can only be spun.
	NoKeys bool
}

// Options configures a Machine.
type Options struct {
	// Attrs seeds the numeric model; see numeric.Options.
	Attrs *numeric.Attrs
	// Profile defaults to format.DefaultProfile. Its Digits is replaced by
	// the model's digits.
	Profile    *format.Profile
	HostLocale string
	Units      string
	Flags      Flags
	Validate   numeric.ValidateFunc

	OnChange    func(ChangeEvent)
	OnCorrected func(Correction)
	Logger      *zerolog.Logger
}

// Machine drives one widget: it feeds events through Reduce and executes the
// resulting effects against the model, the scheduler and the renderer.
type Machine struct {
	state State
	model *numeric.Model
	fmt   *format.Formatter
	sched *spin.Scheduler
	r     Renderer

	units string
	flags Flags

	onChange    func(ChangeEvent)
	onCorrected func(Correction)
	log         zerolog.Logger
}

func New(r Renderer, opt Options) *Machine {
	m := &Machine{
		r:           r,
		units:       opt.Units,
		flags:       opt.Flags,
		onChange:    opt.OnChange,
		onCorrected: opt.OnCorrected,
		log:         zerolog.Nop(),
	}
	if opt.Logger != nil {
		m.log = opt.Logger.With().Str("component", "interaction").Logger()
	}
	m.model = numeric.New(numeric.Options{
		Attrs:    opt.Attrs,
		Validate: opt.Validate,
		Logger:   opt.Logger,
	})

	p := format.DefaultProfile()
	if opt.Profile != nil {
		p = *opt.Profile
	}
	p.Digits = m.model.Digits()
	m.fmt = format.New(p, format.Options{HostLocale: opt.HostLocale, Logger: opt.Logger})
	m.sched = spin.New(m.model, m.onStep)

	m.Render()
	return m
}

func (m *Machine) State() State                 { return m.state }
func (m *Machine) Model() *numeric.Model        { return m.model }
func (m *Machine) Formatter() *format.Formatter { return m.fmt }
func (m *Machine) Scheduler() *spin.Scheduler   { return m.sched }
func (m *Machine) Flags() Flags                 { return m.flags }
func (m *Machine) Units() string                { return m.units }
func (m *Machine) Value() float64               { return m.model.Value() }

// SetValidate replaces the validate hook.
func (m *Machine) SetValidate(fn numeric.ValidateFunc) { m.model.SetValidate(fn) }

// Env is the reduction context for the current attributes.
func (m *Machine) Env() Env {
	return Env{
		Spins:       !m.flags.NoSpin,
		Confirms:    !m.flags.NoConfirm,
		Keyboards:   !m.flags.NoKeys,
		BlurCancel:  m.flags.BlurCancel,
		ShowButtons: m.flags.ShowButtons,
		Min:         m.model.Min(),
		Max:         m.model.Max(),
		Parse:       m.fmt.Parse,
		EditText:    m.fmt.Format(m.model.Value(), true),
	}
}

// Dispatch processes one event to completion. The returned Wake, when
// armed, asks the host to deliver SpinTick{Handle} after Wake.After.
func (m *Machine) Dispatch(ev Event) spin.Wake {
	if t, ok := ev.(SpinTick); ok && (t.Handle == 0 || t.Handle != m.sched.Pending()) {
		return spin.Wake{}
	}
	prev := m.state
	next, fx := Reduce(m.state, ev, m.Env())
	m.state = next
	if prev.Mode != next.Mode {
		m.log.Debug().
			Str("event", fmt.Sprintf("%T", ev)).
			Stringer("from", prev.Mode).
			Stringer("to", next.Mode).
			Msg("transition")
	}

	var wake spin.Wake
	for _, e := range fx {
		if w := m.exec(e); w.Armed() {
			wake = w
		}
	}
	return wake
}

// Render pushes the complete current state to the renderer.
func (m *Machine) Render() {
	env := m.Env()
	m.r.ShowControls(ControlsVisible(m.state, env))
	if m.state.Mode == Editing {
		m.r.SetDisplayText(m.state.Text)
	} else {
		m.r.SetDisplayText(m.DisplayText())
	}
	m.r.SetVisualState(Visual(m.state))
}

// DisplayText is the formatted value with its units suffix.
func (m *Machine) DisplayText() string {
	return m.fmt.Format(m.model.Value(), false) + m.fmt.UnitsSuffix(m.units)
}

// TextWidth is the width needed to show any value in [min, max], measured by
// the renderer. Infinite bounds are skipped; the current value always counts.
func (m *Machine) TextWidth() int {
	w := 0
	for _, v := range []float64{m.model.Min(), m.model.Max(), m.model.Value()} {
		if math.IsInf(v, 0) {
			continue
		}
		w = max(w, m.r.MeasureText(m.fmt.Format(v, false)), m.r.MeasureText(m.fmt.Format(v, true)))
	}
	return w + m.r.MeasureText(m.fmt.UnitsSuffix(m.units))
}

// SetValue writes value programmatically, as the host attribute bridge does.
func (m *Machine) SetValue(v float64) numeric.Result {
	res := m.model.SetValue(v)
	m.afterNumeric(res, numeric.FormatNumber(v))
	return res
}

func (m *Machine) exec(e Effect) spin.Wake {
	switch e := e.(type) {
	case ShowControls:
		m.r.ShowControls(e.Visible)
	case DisplayFormatted:
		m.r.SetDisplayText(m.DisplayText())
	case DisplayText:
		m.r.SetDisplayText(e.Text)
	case SetVisual:
		m.r.SetVisualState(e.Tag)
	case Commit:
		if _, ok := m.model.Commit(e.Value); ok {
			m.emit(ChangeEvent{Value: m.model.Value()})
		}
	case StartSpin:
		return m.sched.Start(e.Dir)
	case RedirectSpin:
		return m.sched.Redirect(e.Dir)
	case SpinOnce:
		m.sched.SpinOnce(e.Dir)
	case StopSpin:
		m.sched.Stop()
	case FireSpin:
		return m.sched.Fire(e.Handle)
	}
	return spin.Wake{}
}

func (m *Machine) onStep(s spin.Step) {
	m.r.SetDisplayText(m.DisplayText())
	m.emit(ChangeEvent{Value: s.Value, Spinning: s.Spinning, Dir: s.Dir})
}

func (m *Machine) emit(ev ChangeEvent) {
	m.log.Debug().Float64("value", ev.Value).Bool("spinning", ev.Spinning).Msg("change")
	if m.onChange != nil {
		m.onChange(ev)
	}
}
