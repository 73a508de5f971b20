// Package format converts between spinner values and their display and edit
// text.
//
// Localized output is produced by golang.org/x/text; compact notation scales
// through go-humanize's SI prefixes. Parsing is strict: the empty string is
// NaN and trailing garbage never yields a parsed prefix.
package format

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/iw2rmb/numspin/numeric"
)

// DefaultHostLocale is used when Options.HostLocale is empty or invalid.
const DefaultHostLocale = "en-US"

// Options configures a Formatter.
type Options struct {
	// HostLocale is the locale used for Profile.Locale == "".
	HostLocale string
	Logger     *zerolog.Logger
}

// Formatter formats and parses values under a Profile.
type Formatter struct {
	profile Profile
	host    language.Tag
	tag     language.Tag
	printer *message.Printer
	sep     rune
	group   rune // 0 without a locale

	symbol string // narrow currency symbol, empty without a currency

	log zerolog.Logger
}

func New(p Profile, opt Options) *Formatter {
	f := &Formatter{log: zerolog.Nop()}
	if opt.Logger != nil {
		f.log = opt.Logger.With().Str("component", "format").Logger()
	}
	f.host = language.Make(DefaultHostLocale)
	if opt.HostLocale != "" {
		if tag, err := language.Parse(opt.HostLocale); err == nil {
			f.host = tag
		} else {
			f.log.Info().Err(err).Str("locale", opt.HostLocale).Msg("invalid host locale, using en-US")
		}
	}
	f.profile = p
	f.resolveLocale()
	f.resolveCurrency()
	return f
}

// Profile returns the active profile.
func (f *Formatter) Profile() Profile { return f.profile }

// SetProfile replaces the profile. The decimal separator is recomputed only
// when the locale settings change.
func (f *Formatter) SetProfile(p Profile) {
	prev := f.profile
	f.profile = p
	if !p.sameLocale(prev) {
		f.resolveLocale()
	}
	if p.Currency != prev.Currency || !p.sameLocale(prev) {
		f.resolveCurrency()
	}
}

// Tag is the resolved locale, or language.Und when no locale is active.
func (f *Formatter) Tag() language.Tag {
	if !f.profile.UseLocale {
		return language.Und
	}
	return f.tag
}

// DecimalSeparator is the separator of the active locale; '.' without one.
func (f *Formatter) DecimalSeparator() rune { return f.sep }

// HasCurrency reports whether display output carries a currency symbol.
func (f *Formatter) HasCurrency() bool {
	return f.profile.UseLocale && f.symbol != ""
}

// Format renders v. Editing output is ungrouped with exactly Digits
// decimals in the locale's decimal mark, so that Parse accepts it.
func (f *Formatter) Format(v float64, editing bool) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	digits := f.digits()
	if !f.profile.UseLocale {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}
	if editing {
		s := strconv.FormatFloat(v, 'f', digits, 64)
		if f.sep != '.' {
			s = strings.Replace(s, ".", string(f.sep), 1)
		}
		return s
	}
	return f.display(v, digits)
}

// Parse converts edit text to a number. It returns NaN for text that is not
// a number under the active decimal mark.
//
// With grouping on, the locale's group mark is accepted between groups of
// three digits. A '.' group mark is never stripped: in comma-decimal locales
// such as de-DE a '.' is rejected, so grouped display text of |v| >= 1000
// does not parse there.
func (f *Formatter) Parse(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return math.NaN()
	}
	if f.profile.UseGrouping && !f.profile.AnyDecimal && f.group != 0 && f.group != f.sep && f.group != '.' {
		var ok bool
		if s, ok = ungroup(s, f.group); !ok {
			return math.NaN()
		}
	}
	switch {
	case f.profile.AnyDecimal:
		s = strings.Replace(s, ",", ".", 1)
	case f.sep == ',':
		if strings.ContainsRune(s, '.') {
			return math.NaN()
		}
		s = strings.Replace(s, ",", ".", 1)
	case f.sep != '.':
		s = strings.Replace(s, string(f.sep), ".", 1)
	}
	return numeric.ParseNumber(s)
}

// UnitsSuffix returns the text appended to display output for units:
// "/units" when a currency is shown (price per unit), units otherwise.
func (f *Formatter) UnitsSuffix(units string) string {
	if units == "" {
		return ""
	}
	if f.HasCurrency() {
		return "/" + units
	}
	return units
}

// DecimalSeparator formats 0.1 under tag and reads the decimal mark back.
func DecimalSeparator(tag language.Tag) rune {
	s := message.NewPrinter(tag).Sprint(number.Decimal(0.1, number.MinFractionDigits(1)))
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return r
		}
	}
	return '.'
}

// GroupSeparator formats a million under tag and reads the grouping mark
// back. It returns 0 when the locale does not group.
func GroupSeparator(tag language.Tag) rune {
	s := message.NewPrinter(tag).Sprint(number.Decimal(1000000))
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return r
		}
	}
	return 0
}

// ungroup removes the group mark g from s. Marks must sit between runs of
// three digits after a leading run of one to three.
func ungroup(s string, g rune) (string, bool) {
	parts := strings.Split(s, string(g))
	if len(parts) == 1 {
		return s, true
	}
	head := strings.TrimLeft(parts[0], "+-")
	if len(parts[0])-len(head) > 1 || len(head) == 0 || len(head) > 3 || !allDigits(head) {
		return "", false
	}
	for _, p := range parts[1 : len(parts)-1] {
		if len(p) != 3 || !allDigits(p) {
			return "", false
		}
	}
	last := parts[len(parts)-1]
	if len(last) < 3 || !allDigits(last[:3]) || (len(last) > 3 && isDigit(last[3])) {
		return "", false
	}
	return strings.Join(parts, ""), true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (f *Formatter) digits() int {
	d := f.profile.Digits
	if d < 0 {
		return 0
	}
	if d > numeric.MaxDigits {
		return numeric.MaxDigits
	}
	return d
}

func (f *Formatter) resolveLocale() {
	if !f.profile.UseLocale {
		f.tag = language.Und
		f.printer = nil
		f.sep, f.group = '.', 0
		return
	}
	f.tag = f.host
	if f.profile.Locale != "" {
		tag, err := language.Parse(f.profile.Locale)
		if err != nil {
			f.log.Info().Err(err).Str("locale", f.profile.Locale).Msg("unknown locale, using host locale")
		} else {
			f.tag = tag
		}
	}
	f.printer = message.NewPrinter(f.tag)
	f.sep = DecimalSeparator(f.tag)
	f.group = GroupSeparator(f.tag)
}

func (f *Formatter) resolveCurrency() {
	f.symbol = ""
	if f.profile.Currency == "" {
		return
	}
	u, err := currency.ParseISO(f.profile.Currency)
	if err != nil {
		f.log.Info().Err(err).Str("currency", f.profile.Currency).Msg("unknown currency code")
		return
	}
	tag := f.tag
	if tag == language.Und {
		tag = f.host
	}
	f.symbol = message.NewPrinter(tag).Sprint(currency.NarrowSymbol(u))
}

func (f *Formatter) display(v float64, digits int) string {
	neg := v < 0
	abs := math.Abs(v)
	if f.symbol == "" {
		return f.notation(v, digits)
	}
	body := f.symbol + f.notation(abs, digits)
	switch {
	case !neg:
		return body
	case f.profile.Accounting:
		return "(" + body + ")"
	default:
		return "-" + body
	}
}

func (f *Formatter) notation(v float64, digits int) string {
	opts := []number.Option{number.MaxFractionDigits(digits)}
	if !f.profile.UseGrouping {
		opts = append(opts, number.NoSeparator())
	}
	switch f.profile.Notation {
	case Scientific:
		return f.printer.Sprint(number.Scientific(v, opts...))
	case Engineering:
		return f.printer.Sprint(number.Engineering(v, opts...))
	case Compact:
		if s, ok := f.compact(v, opts); ok {
			return s
		}
	}
	opts = append(opts, number.MinFractionDigits(digits))
	return f.printer.Sprint(number.Decimal(v, opts...))
}

var compactSuffix = map[string]string{"k": "K", "M": "M", "G": "B", "T": "T"}

// compact scales |v| >= 1000 to a short-scale suffix. Magnitudes below a
// thousand, or beyond trillions, fall back to standard notation.
func (f *Formatter) compact(v float64, opts []number.Option) (string, bool) {
	if math.Abs(v) < 1000 {
		return "", false
	}
	scaled, prefix := humanize.ComputeSI(v)
	suffix, ok := compactSuffix[prefix]
	if !ok {
		return "", false
	}
	return f.printer.Sprint(number.Decimal(scaled, opts...)) + suffix, true
}

// ValidCurrency reports whether code is a known ISO 4217 currency code.
func ValidCurrency(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}
