package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/numspin/format"
	"github.com/iw2rmb/numspin/interaction"
	"github.com/iw2rmb/numspin/numeric"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, decodes and validates the profile file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes and validates data; path only labels errors.
func Parse(path string, data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &Error{Path: path, Line: extractLine(err), Err: err}
	}
	if err := Validate(&f); err != nil {
		return nil, convertValidationError(path, err)
	}
	for i, w := range f.Widgets {
		if err := w.checkNumbers(); err != nil {
			return nil, &Error{Path: path, Field: fmt.Sprintf("widgets[%d]", i), Err: err}
		}
	}
	return &f, nil
}

func extractLine(err error) int {
	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		err = errors.New(te.Errors[0])
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// checkNumbers rejects NaN and misplaced infinities, which YAML can spell
// (.nan, .inf) but the engine would only revert.
func (w Widget) checkNumbers() error {
	for _, f := range []struct {
		name string
		v    *float64
	}{{"value", w.Value}, {"step", w.Step}} {
		if f.v != nil && (math.IsNaN(*f.v) || math.IsInf(*f.v, 0)) {
			return fmt.Errorf("%s must be finite", f.name)
		}
	}
	if w.Min != nil && (math.IsNaN(*w.Min) || math.IsInf(*w.Min, 1)) {
		return errors.New("min must be a number or -.inf")
	}
	if w.Max != nil && (math.IsNaN(*w.Max) || math.IsInf(*w.Max, -1)) {
		return errors.New("max must be a number or .inf")
	}
	return nil
}

// Attrs converts w to engine attributes. A missing step selects the
// digits-derived step.
func (w Widget) Attrs() numeric.Attrs {
	a := numeric.DefaultAttrs()
	a.Step = 0
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&a.Value, w.Value)
	set(&a.Min, w.Min)
	set(&a.Max, w.Max)
	set(&a.Step, w.Step)
	if w.Digits != nil {
		a.Digits = float64(*w.Digits)
	}
	if w.Delay != nil {
		a.Delay = float64(*w.Delay)
	}
	if w.Interval != nil {
		a.Interval = float64(*w.Interval)
	}
	return a
}

func (w Widget) Profile() format.Profile {
	p := format.DefaultProfile()
	if w.Locale != "" {
		p.UseLocale, p.Locale = true, w.Locale
	}
	p.Notation, _ = format.ParseNotation(w.Notation)
	p.Currency = w.Currency
	p.Accounting = w.Accounting
	p.AnyDecimal = w.AnyDecimal
	return p
}

func (w Widget) InteractionFlags() interaction.Flags {
	return interaction.Flags{
		BlurCancel:  w.Flags.BlurCancel,
		ShowButtons: w.Flags.ShowButtons,
		NoSpin:      w.Flags.NoSpin,
		NoConfirm:   w.Flags.NoConfirm,
		NoKeys:      w.Flags.NoKeys,
	}
}
