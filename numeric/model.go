package numeric

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Status reports whether an attribute write was accepted.
type Status uint8

const (
	Accepted Status = iota
	Reverted
)

func (s Status) String() string {
	if s == Reverted {
		return "reverted"
	}
	return "accepted"
}

// Result describes the outcome of one attribute write.
type Result struct {
	Attr   Attr
	Status Status
	// Value is the attribute's value after the write: the accepted (possibly
	// clamped) value, or the restored value on revert.
	Value float64
	// Clamped is set when the written value was pulled into [min, max].
	Clamped bool
	// Changed lists every attribute whose value moved, including implicit
	// ones (value reclamped by a bound, auto-step following digits).
	Changed []Attr
}

// Accepted reports whether the write was kept.
func (r Result) Accepted() bool { return r.Status == Accepted }

// ValueChanged reports whether value moved as part of this write.
func (r Result) ValueChanged() bool {
	for _, a := range r.Changed {
		if a == AttrValue {
			return true
		}
	}
	return false
}

// ValidateFunc may transform a candidate value or veto it by returning
// ok=false. spinning is true for spin steps and false for confirmed edits.
type ValidateFunc func(candidate float64, spinning bool) (value float64, ok bool)

// Options configures a Model.
type Options struct {
	// Attrs seeds the model; start from DefaultAttrs. A Step that is zero or
	// equal to the auto-step for Digits is not explicit. Zero Delay or
	// Interval keep the defaults.
	Attrs    *Attrs
	Validate ValidateFunc
	Logger   *zerolog.Logger // nil: silent
}

// Model holds the validated numeric attributes.
type Model struct {
	attrs        Attrs
	explicitStep bool
	validate     ValidateFunc
	log          zerolog.Logger
	version      uint64
}

func New(opt Options) *Model {
	m := &Model{
		attrs:    DefaultAttrs(),
		validate: opt.Validate,
		log:      zerolog.Nop(),
	}
	if opt.Logger != nil {
		m.log = opt.Logger.With().Str("component", "numeric").Logger()
	}
	if opt.Attrs != nil {
		// Seed through the setters so that initial values obey the same rules
		// as later writes. Bounds first, then the value they constrain.
		a := *opt.Attrs
		m.SetDigits(a.Digits)
		if a.Step != 0 && a.Step != autoStep(m.attrs.Digits) {
			m.SetStep(a.Step)
		}
		if a.Delay != 0 {
			m.SetDelay(a.Delay)
		}
		if a.Interval != 0 {
			m.SetInterval(a.Interval)
		}
		m.SetMax(a.Max)
		m.SetMin(a.Min)
		m.SetValue(a.Value)
		m.version = 0
	}
	return m
}

func (m *Model) Attrs() Attrs { return m.attrs }

func (m *Model) Value() float64 { return m.attrs.Value }
func (m *Model) Min() float64   { return m.attrs.Min }
func (m *Model) Max() float64   { return m.attrs.Max }

// Step size magnitude; auto-derived from digits unless set explicitly.
func (m *Model) StepSize() float64 { return m.attrs.Step }

// ExplicitStep reports whether step was set by the host rather than derived.
func (m *Model) ExplicitStep() bool { return m.explicitStep }

func (m *Model) Digits() int { return int(m.attrs.Digits) }

// Delay is the pause before a held control starts repeating.
func (m *Model) Delay() time.Duration { return msDuration(m.attrs.Delay) }

// Interval is the period between repeats once spinning.
func (m *Model) Interval() time.Duration { return msDuration(m.attrs.Interval) }

// Timing returns Delay and Interval together.
func (m *Model) Timing() (delay, interval time.Duration) {
	return m.Delay(), m.Interval()
}

// Version increments on every effective attribute change.
func (m *Model) Version() uint64 { return m.version }

// SetValidate replaces the validate hook; nil removes it.
func (m *Model) SetValidate(fn ValidateFunc) { m.validate = fn }

// Get returns the accepted value of a.
func (m *Model) Get(a Attr) float64 {
	switch a {
	case AttrValue:
		return m.attrs.Value
	case AttrMin:
		return m.attrs.Min
	case AttrMax:
		return m.attrs.Max
	case AttrStep:
		return m.attrs.Step
	case AttrDigits:
		return m.attrs.Digits
	case AttrDelay:
		return m.attrs.Delay
	case AttrInterval:
		return m.attrs.Interval
	default:
		return math.NaN()
	}
}

// SetAttribute is the host bridge: raw is parsed strictly and routed to the
// typed setter for name.
func (m *Model) SetAttribute(name, raw string) (Result, error) {
	a, ok := ParseAttr(name)
	if !ok {
		return Result{}, fmt.Errorf("set %q: %w", name, ErrUnknownAttribute)
	}
	n := ParseNumber(raw)
	if math.IsNaN(n) {
		return m.revert(a, raw), nil
	}
	switch a {
	case AttrValue:
		return m.setValue(n, raw), nil
	case AttrMin:
		return m.setMin(n, raw), nil
	case AttrMax:
		return m.setMax(n, raw), nil
	case AttrStep:
		return m.setStep(n, raw), nil
	case AttrDigits:
		return m.setDigits(n, raw), nil
	default:
		return m.setTiming(a, n, raw), nil
	}
}

// RemoveAttribute clears an attribute. Only step may be removed, which
// restores auto-step; the others cannot be absent and revert.
func (m *Model) RemoveAttribute(name string) (Result, error) {
	a, ok := ParseAttr(name)
	if !ok {
		return Result{}, fmt.Errorf("remove %q: %w", name, ErrUnknownAttribute)
	}
	if a == AttrStep {
		return m.ClearStep(), nil
	}
	return m.revert(a, "<removed>"), nil
}

func (m *Model) SetValue(n float64) Result { return m.setValue(n, FormatNumber(n)) }
func (m *Model) SetMin(n float64) Result   { return m.setMin(n, FormatNumber(n)) }
func (m *Model) SetMax(n float64) Result   { return m.setMax(n, FormatNumber(n)) }
func (m *Model) SetStep(n float64) Result  { return m.setStep(n, FormatNumber(n)) }

func (m *Model) SetDigits(n float64) Result { return m.setDigits(n, FormatNumber(n)) }

func (m *Model) SetDelay(ms float64) Result {
	return m.setTiming(AttrDelay, ms, FormatNumber(ms))
}

func (m *Model) SetInterval(ms float64) Result {
	return m.setTiming(AttrInterval, ms, FormatNumber(ms))
}

// ClearStep drops an explicit step and derives it from digits again.
func (m *Model) ClearStep() Result {
	m.explicitStep = false
	step := autoStep(m.attrs.Digits)
	res := Result{Attr: AttrStep, Status: Accepted, Value: step}
	if step != m.attrs.Step {
		m.attrs.Step = step
		res.Changed = []Attr{AttrStep}
		m.version++
	}
	return res
}

func (m *Model) setValue(n float64, raw string) Result {
	if math.IsNaN(n) {
		return m.revert(AttrValue, raw)
	}
	v, clamped := m.clamp(n)
	if math.IsInf(v, 0) {
		return m.revert(AttrValue, raw)
	}
	res := Result{Attr: AttrValue, Status: Accepted, Value: v, Clamped: clamped}
	if v != m.attrs.Value {
		m.attrs.Value = v
		res.Changed = []Attr{AttrValue}
		m.version++
	}
	return res
}

func (m *Model) setMin(n float64, raw string) Result {
	if math.IsNaN(n) || math.IsInf(n, 1) {
		return m.revert(AttrMin, raw)
	}
	res := Result{Attr: AttrMin, Status: Accepted}
	if n > m.attrs.Max {
		n = m.attrs.Max
		res.Clamped = true
	}
	res.Value = n
	res.Changed = m.applyBound(&m.attrs.Min, AttrMin, n)
	return res
}

func (m *Model) setMax(n float64, raw string) Result {
	if math.IsNaN(n) || math.IsInf(n, -1) {
		return m.revert(AttrMax, raw)
	}
	res := Result{Attr: AttrMax, Status: Accepted}
	if n < m.attrs.Min {
		n = m.attrs.Min
		res.Clamped = true
	}
	res.Value = n
	res.Changed = m.applyBound(&m.attrs.Max, AttrMax, n)
	return res
}

// applyBound stores a bound and reclamps value against it. The reclamp does
// not consult the validate hook.
func (m *Model) applyBound(dst *float64, a Attr, n float64) []Attr {
	var changed []Attr
	if *dst != n {
		*dst = n
		changed = append(changed, a)
		m.version++
	}
	if v, clamped := m.clamp(m.attrs.Value); clamped {
		m.attrs.Value = v
		changed = append(changed, AttrValue)
		m.version++
	}
	return changed
}

func (m *Model) setStep(n float64, raw string) Result {
	if math.IsNaN(n) || math.IsInf(n, 0) || n == 0 {
		return m.revert(AttrStep, raw)
	}
	m.explicitStep = true
	res := Result{Attr: AttrStep, Status: Accepted, Value: n}
	if n != m.attrs.Step {
		m.attrs.Step = n
		res.Changed = []Attr{AttrStep}
		m.version++
	}
	return res
}

func (m *Model) setDigits(n float64, raw string) Result {
	if !m.validMinimum(AttrDigits, n) || n > MaxDigits {
		return m.revert(AttrDigits, raw)
	}
	res := Result{Attr: AttrDigits, Status: Accepted, Value: n}
	if n != m.attrs.Digits {
		m.attrs.Digits = n
		res.Changed = append(res.Changed, AttrDigits)
		m.version++
	}
	if !m.explicitStep {
		if step := autoStep(n); step != m.attrs.Step {
			m.attrs.Step = step
			res.Changed = append(res.Changed, AttrStep)
			m.version++
		}
	}
	return res
}

func (m *Model) setTiming(a Attr, n float64, raw string) Result {
	if !m.validMinimum(a, n) {
		return m.revert(a, raw)
	}
	dst := &m.attrs.Delay
	if a == AttrInterval {
		dst = &m.attrs.Interval
	}
	res := Result{Attr: a, Status: Accepted, Value: n}
	if *dst != n {
		*dst = n
		res.Changed = []Attr{a}
		m.version++
	}
	return res
}

// validMinimum applies the shared floor check for digits, delay and interval:
// finite, whole, and at or above the attribute's floor.
func (m *Model) validMinimum(a Attr, n float64) bool {
	if math.IsNaN(n) || math.IsInf(n, 0) || !isWhole(n) {
		return false
	}
	floor := 1.0
	if a == AttrDigits {
		floor = 0
	}
	return n >= floor
}

func (m *Model) revert(a Attr, raw string) Result {
	prev := m.Get(a)
	m.log.Info().
		Str("attr", string(a)).
		Str("raw", raw).
		Str("kept", FormatNumber(prev)).
		Msgf("%q is not a valid value for the %s attribute", raw, a)
	return Result{Attr: a, Status: Reverted, Value: prev}
}

func (m *Model) clamp(n float64) (float64, bool) {
	switch {
	case n > m.attrs.Max:
		return m.attrs.Max, true
	case n < m.attrs.Min:
		return m.attrs.Min, true
	default:
		return n, false
	}
}

func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
