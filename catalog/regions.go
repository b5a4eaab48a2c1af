// Region predicate tables and Profile construction.
//
// Determinism:
//   - ProfileFor depends only on its input; the predicate tables are
//     package-level constants in all but type.

package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/mensura/unitgraph/units"
)

// Profile captures everything region-dependent about the registry: which
// measurement system supplies the default source/target units, and which
// optional regional units are part of the active set.
//
// A Profile is a plain value; copying it is cheap and safe. The zero value
// is the SI/Celsius baseline with no optional units.
type Profile struct {
	// Region is the canonical two-letter region code this profile was
	// derived from ("" for hand-built profiles).
	Region string

	// USCustomary selects US-customary defaults for length, area, volume,
	// weight and speed.
	USCustomary bool

	// Fahrenheit selects Fahrenheit as the temperature default.
	Fahrenheit bool

	// WattDefault selects watt instead of kilowatt as the power default.
	WattDefault bool

	// ImperialSpoons selects the UK teaspoon/tablespoon as volume defaults.
	ImperialSpoons bool

	// Optional holds the regional optional units enabled for this profile.
	// Units listed here exist in the active set; all other optional units
	// are left out entirely (their scale factors remain in the tables).
	Optional map[units.UnitID]struct{}
}

// SI reports whether the profile defaults to the International System.
func (p Profile) SI() bool { return !p.USCustomary }

// OptionalEnabled reports whether the optional unit id is active.
func (p Profile) OptionalEnabled(id units.UnitID) bool {
	_, ok := p.Optional[id]

	return ok
}

// regionSet builds a membership set from two-letter codes.
func regionSet(codes ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}

	return s
}

// Declarative region predicates. Sources:
//   - US customary: the US plus the Federated States of Micronesia, the
//     Marshall Islands, Palau, and (customary without Fahrenheit-carve-out)
//     Liberia — https://en.wikipedia.org/wiki/Metrication
//   - Fahrenheit: the customary set plus the Bahamas and the Cayman Islands —
//     https://en.wikipedia.org/wiki/Fahrenheit
var (
	usCustomaryRegions = regionSet("US", "FM", "MH", "PW", "LR")
	fahrenheitRegions  = regionSet("US", "FM", "MH", "PW", "LR", "BS", "KY")
	wattDefaultRegions = regionSet("GB")
	imperialSpoonsSet  = regionSet("GB")

	// optionalUnitsByRegion enables units that exist only for some regions.
	// Their scale factors are always present in the factor tables; absence
	// from this table merely keeps them out of the active set.
	optionalUnitsByRegion = map[string][]units.UnitID{
		"KR": {units.AreaPyeong},
		"KP": {units.AreaPyeong},
	}
)

// ProfileFor derives a Profile from a two-letter region code.
//
// The code is validated and canonicalized with x/text/language, so "us",
// "US" and "uS" all resolve to the US profile, while made-up codes return
// ErrBadRegion.
func ProfileFor(code string) (Profile, error) {
	reg, err := language.ParseRegion(code)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrBadRegion, code)
	}
	// ISO3() is defined for every parsed region; String() may yield a
	// numeric UN M.49 code for macro-regions, which we reject as well.
	canonical := reg.String()
	if len(canonical) != 2 {
		return Profile{}, fmt.Errorf("%w: %q is not a country region", ErrBadRegion, code)
	}
	canonical = strings.ToUpper(canonical)

	return profileForCanonical(canonical), nil
}

// profileForCanonical assembles a Profile from the predicate tables.
// The code must already be a canonical upper-case two-letter region.
func profileForCanonical(code string) Profile {
	p := Profile{Region: code}
	_, p.USCustomary = usCustomaryRegions[code]
	_, p.Fahrenheit = fahrenheitRegions[code]
	_, p.WattDefault = wattDefaultRegions[code]
	_, p.ImperialSpoons = imperialSpoonsSet[code]

	if ids := optionalUnitsByRegion[code]; len(ids) > 0 {
		p.Optional = make(map[units.UnitID]struct{}, len(ids))
		for _, id := range ids {
			p.Optional[id] = struct{}{}
		}
	}

	return p
}
