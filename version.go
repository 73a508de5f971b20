// Package numspin holds the module version. The widgets live in the
// numeric, format, spin, interaction, stepper and toggle packages.
package numspin

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// Semver is a parsed SemVer 2.0.0 version.
type Semver struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

// ParseSemver parses v, which must not carry a leading "v".
func ParseSemver(v string) (Semver, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Semver{}, fmt.Errorf("invalid semver %q", v)
	}
	var s Semver
	for i, dst := range []*int{&s.Major, &s.Minor, &s.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Semver{}, fmt.Errorf("invalid semver %q: %w", v, err)
		}
		*dst = n
	}
	s.Pre, s.Build = m[4], m[5]
	return s, nil
}

func (s Semver) String() string {
	out := fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
	if s.Pre != "" {
		out += "-" + s.Pre
	}
	if s.Build != "" {
		out += "+" + s.Build
	}
	return out
}

// Version returns the embedded module version without the "v" prefix.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version in git tag form.
func VersionTag() string {
	return "v" + Version()
}
