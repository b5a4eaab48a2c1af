// Registry: the read-only view the graph builder consumes.
//
// Concurrency:
//   - A Registry is immutable after NewRegistry; both methods only read
//     package-level declarative tables and the bound Profile.

package catalog

import "github.com/mensura/unitgraph/units"

// Registry binds the static registry data to one region Profile and answers
// the two questions the ratio-graph builder asks: which categories exist,
// and which units are active per category.
type Registry struct {
	profile Profile
}

// NewRegistry returns a Registry bound to the given profile.
func NewRegistry(p Profile) *Registry {
	return &Registry{profile: p}
}

// Profile returns the profile this registry is bound to.
func (r *Registry) Profile() Profile { return r.profile }

// Categories returns the registered categories in registry order.
func (r *Registry) Categories() []units.Category {
	return Categories()
}

// ActiveUnits returns the active unit set per category for the bound
// profile: every declared unit whose existence conditions hold, in
// declaration order (unsorted; the builder applies the stable order sort).
//
// The currency category has no entry — it is the designed exclusion and is
// populated after the build by the currency package.
//
// Complexity: O(total units); a fresh map and fresh slices on every call,
// so callers may retain or mutate the result freely.
func (r *Registry) ActiveUnits() map[units.CategoryID][]units.Unit {
	out := make(map[units.CategoryID][]units.Unit, len(unitBuilders))
	for cat, build := range unitBuilders {
		out[cat] = build(r.profile)
	}

	return out
}
