// YAML profile files. A profile file names a region and optionally overrides
// individual predicates or enables extra optional units:
//
//	region: GB
//	watt_default: false
//	enable_optional: [15]
//
// Absent keys keep the value the region's predicate tables derive.

package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mensura/unitgraph/units"
)

// profileFile is the on-disk shape. Pointer fields distinguish "absent"
// from an explicit false.
type profileFile struct {
	Region         string `yaml:"region"`
	USCustomary    *bool  `yaml:"us_customary"`
	Fahrenheit     *bool  `yaml:"fahrenheit"`
	WattDefault    *bool  `yaml:"watt_default"`
	ImperialSpoons *bool  `yaml:"imperial_spoons"`
	EnableOptional []int  `yaml:"enable_optional"`
}

// LoadProfile reads a YAML profile from r and resolves it against the
// region predicate tables. The region key is required; every other key is
// an override on top of what ProfileFor would return.
//
// Errors:
//   - ErrBadProfile: unreadable or unparseable input, or a non-positive
//     unit id in enable_optional.
//   - ErrBadRegion:  the region key is missing or invalid.
func LoadProfile(r io.Reader) (Profile, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrBadProfile, err)
	}

	var pf profileFile
	if err = yaml.Unmarshal(raw, &pf); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrBadProfile, err)
	}
	if pf.Region == "" {
		return Profile{}, fmt.Errorf("%w: profile file has no region key", ErrBadRegion)
	}

	p, err := ProfileFor(pf.Region)
	if err != nil {
		return Profile{}, err
	}

	if pf.USCustomary != nil {
		p.USCustomary = *pf.USCustomary
	}
	if pf.Fahrenheit != nil {
		p.Fahrenheit = *pf.Fahrenheit
	}
	if pf.WattDefault != nil {
		p.WattDefault = *pf.WattDefault
	}
	if pf.ImperialSpoons != nil {
		p.ImperialSpoons = *pf.ImperialSpoons
	}

	for _, id := range pf.EnableOptional {
		if id <= 0 {
			return Profile{}, fmt.Errorf("%w: enable_optional id %d out of range", ErrBadProfile, id)
		}
		if p.Optional == nil {
			p.Optional = make(map[units.UnitID]struct{}, len(pf.EnableOptional))
		}
		p.Optional[units.UnitID(id)] = struct{}{}
	}

	return p, nil
}
