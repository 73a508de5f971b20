package format

import "strings"

// Notation selects the display notation of a localized number.
type Notation string

const (
	Standard    Notation = "standard"
	Scientific  Notation = "scientific"
	Engineering Notation = "engineering"
	Compact     Notation = "compact"
)

// ParseNotation resolves a host attribute value. The empty string is Standard.
func ParseNotation(s string) (Notation, bool) {
	n := Notation(strings.ToLower(strings.TrimSpace(s)))
	switch n {
	case "":
		return Standard, true
	case Standard, Scientific, Engineering, Compact:
		return n, true
	default:
		return "", false
	}
}

// Profile is the locale/format configuration of a formatter.
type Profile struct {
	// UseLocale enables localized display. When false the display is the
	// value with Digits fixed decimals.
	UseLocale bool
	// Locale is a BCP 47 tag; empty selects the host locale.
	Locale      string
	Digits      int
	UseGrouping bool
	Notation    Notation
	// Currency is an ISO 4217 code, empty for none.
	Currency string
	// Accounting wraps negative currency amounts in parentheses.
	Accounting bool
	// AnyDecimal accepts both '.' and ',' as the decimal mark when parsing.
	AnyDecimal bool
}

// DefaultProfile is the profile of a new widget: fixed decimals, grouping
// enabled for when a locale is switched on.
func DefaultProfile() Profile {
	return Profile{UseGrouping: true, Notation: Standard}
}

func (p Profile) sameLocale(o Profile) bool {
	return p.UseLocale == o.UseLocale && p.Locale == o.Locale
}
