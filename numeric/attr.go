package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Attr names a numeric attribute.
type Attr string

const (
	AttrValue    Attr = "value"
	AttrMin      Attr = "min"
	AttrMax      Attr = "max"
	AttrStep     Attr = "step"
	AttrDigits   Attr = "digits"
	AttrDelay    Attr = "delay"
	AttrInterval Attr = "interval"
)

// ErrUnknownAttribute is returned by the string bridge for names outside the
// seven numeric attributes.
var ErrUnknownAttribute = errors.New("unknown numeric attribute")

// MaxDigits is the largest accepted digits value.
const MaxDigits = 100

// Attrs is a snapshot of the accepted attribute values.
type Attrs struct {
	Value    float64
	Min      float64
	Max      float64
	Step     float64
	Digits   float64
	Delay    float64 // milliseconds
	Interval float64 // milliseconds
}

// DefaultAttrs returns the construction-time attribute values.
func DefaultAttrs() Attrs {
	return Attrs{
		Value:    0,
		Min:      math.Inf(-1),
		Max:      math.Inf(1),
		Step:     1,
		Digits:   0,
		Delay:    500,
		Interval: 33, // ~2 frames at 60fps
	}
}

// Attributes lists the numeric attribute names in bridge order.
func Attributes() []Attr {
	return []Attr{AttrValue, AttrMin, AttrMax, AttrStep, AttrDigits, AttrDelay, AttrInterval}
}

// ParseAttr resolves a host attribute name.
func ParseAttr(name string) (Attr, bool) {
	a := Attr(strings.ToLower(strings.TrimSpace(name)))
	switch a {
	case AttrValue, AttrMin, AttrMax, AttrStep, AttrDigits, AttrDelay, AttrInterval:
		return a, true
	default:
		return "", false
	}
}

// ParseNumber converts host text to a number the way a strict numeric cast
// does: surrounding space is ignored, the empty string is NaN (never 0), and
// trailing garbage is NaN rather than a parsed prefix.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN()
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// strconv also accepts "inf" and "nan" spellings and hex mantissas, which
	// a strict numeric cast rejects.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(lower, "0x") || strings.Contains(s, "_") {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// FormatNumber renders n for attribute reflection.
func FormatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func autoStep(digits float64) float64 {
	return 1 / math.Pow(10, digits)
}

func isWhole(n float64) bool {
	return n == math.Trunc(n)
}
