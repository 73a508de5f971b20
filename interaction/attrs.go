package interaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/numspin/format"
	"github.com/iw2rmb/numspin/numeric"
)

// String and boolean attributes handled by the bridge, in addition to the
// numeric ones.
const (
	AttrUnits       = "units"
	AttrLocale      = "locale"
	AttrNotation    = "notation"
	AttrCurrency    = "currency"
	AttrAccounting  = "accounting"
	AttrAnyDecimal  = "any-decimal"
	AttrBlurCancel  = "blur-cancel"
	AttrShowButtons = "show-buttons"
	AttrNoSpin      = "no-spin"
	AttrNoConfirm   = "no-confirm"
	AttrNoKeys      = "no-keys"
)

// ErrUnknownAttribute is returned for attribute names the widget does not
// have.
var ErrUnknownAttribute = errors.New("unknown attribute")

// SetAttribute is the host attribute bridge. Numeric attributes go to the
// model, the rest to the format profile or the flags. Boolean attributes are
// set by presence; raw is ignored for them. Invalid values are reverted and
// reported through Options.OnCorrected; only unknown names are errors.
func (m *Machine) SetAttribute(name, raw string) error {
	if _, ok := numeric.ParseAttr(name); ok {
		res, err := m.model.SetAttribute(name, raw)
		if err != nil {
			return err
		}
		m.afterNumeric(res, raw)
		return nil
	}

	key := strings.ToLower(strings.TrimSpace(name))
	p := m.fmt.Profile()
	switch key {
	case AttrUnits:
		m.units = raw
	case AttrLocale:
		p.UseLocale, p.Locale = true, strings.TrimSpace(raw)
	case AttrNotation:
		n, ok := format.ParseNotation(raw)
		if !ok {
			m.correct(key, raw, string(p.Notation))
			return nil
		}
		p.Notation = n
	case AttrCurrency:
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code != "" && !format.ValidCurrency(code) {
			m.correct(key, raw, p.Currency)
			return nil
		}
		p.Currency = code
	case AttrAccounting:
		p.Accounting = true
	case AttrAnyDecimal:
		p.AnyDecimal = true
	default:
		if !m.setFlag(key, true) {
			return fmt.Errorf("set %q: %w", name, ErrUnknownAttribute)
		}
	}
	m.fmt.SetProfile(p)
	m.settle()
	return nil
}

// RemoveAttribute clears an attribute: booleans become false, strings empty,
// locale switches localized display off and step returns to auto-step.
// Other numeric attributes cannot be absent and are reverted.
func (m *Machine) RemoveAttribute(name string) error {
	if _, ok := numeric.ParseAttr(name); ok {
		res, err := m.model.RemoveAttribute(name)
		if err != nil {
			return err
		}
		m.afterNumeric(res, "")
		return nil
	}

	key := strings.ToLower(strings.TrimSpace(name))
	p := m.fmt.Profile()
	switch key {
	case AttrUnits:
		m.units = ""
	case AttrLocale:
		p.UseLocale, p.Locale = false, ""
	case AttrNotation:
		p.Notation = format.Standard
	case AttrCurrency:
		p.Currency = ""
	case AttrAccounting:
		p.Accounting = false
	case AttrAnyDecimal:
		p.AnyDecimal = false
	default:
		if !m.setFlag(key, false) {
			return fmt.Errorf("remove %q: %w", name, ErrUnknownAttribute)
		}
	}
	m.fmt.SetProfile(p)
	m.settle()
	return nil
}

// SetFlags replaces all behaviour flags at once.
func (m *Machine) SetFlags(f Flags) {
	m.flags = f
	m.settle()
}

func (m *Machine) setFlag(key string, on bool) bool {
	switch key {
	case AttrBlurCancel:
		m.flags.BlurCancel = on
	case AttrShowButtons:
		m.flags.ShowButtons = on
	case AttrNoSpin:
		m.flags.NoSpin = on
	case AttrNoConfirm:
		m.flags.NoConfirm = on
	case AttrNoKeys:
		m.flags.NoKeys = on
	default:
		return false
	}
	return true
}

func (m *Machine) afterNumeric(res numeric.Result, raw string) {
	if !res.Accepted() {
		m.correct(string(res.Attr), raw, numeric.FormatNumber(res.Value))
		return
	}
	for _, a := range res.Changed {
		if a == numeric.AttrDigits {
			p := m.fmt.Profile()
			p.Digits = m.model.Digits()
			m.fmt.SetProfile(p)
		}
	}
	if res.ValueChanged() {
		m.emit(ChangeEvent{Value: m.model.Value()})
	}
	m.settle()
}

// settle re-renders after an attribute change and drops interactions the
// new flags no longer allow.
func (m *Machine) settle() {
	if m.state.Mode == Spinning && m.flags.NoSpin {
		m.sched.Stop()
		m.state = rest(m.state)
	}
	if m.state.Mode == Editing {
		m.state.Invalid, m.state.OutOfBounds = check(m.state.Text, m.Env())
	}
	m.Render()
}

func (m *Machine) correct(attr, raw, kept string) {
	m.log.Debug().Str("attr", attr).Str("raw", raw).Str("kept", kept).Msg("attribute corrected")
	if m.onCorrected != nil {
		m.onCorrected(Correction{Attr: attr, Raw: raw, Kept: kept})
	}
}
