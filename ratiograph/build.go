// Graph construction: the algorithmic core of the module.
//
// Determinism:
//   - Unit lists are stable-sorted by relative order, so equal orders keep
//     registry declaration order.
//   - Ratio maps are built from map iteration but are themselves maps;
//     no output depends on iteration order.

package ratiograph

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/mensura/unitgraph/catalog"
	"github.com/mensura/unitgraph/factors"
	"github.com/mensura/unitgraph/units"
)

// Registry is the consumed face of the unit & category registry: ordered
// categories and the per-category active unit set for one region profile.
// catalog.Registry satisfies it; tests substitute synthetic data.
type Registry interface {
	// Categories returns every registered category in registry order.
	Categories() []units.Category

	// ActiveUnits returns the active unit set per category, unsorted.
	ActiveUnits() map[units.CategoryID][]units.Unit
}

// Build constructs the conversion-ratio graph from a registry and the
// per-category schemes.
//
// Contract highlights (see the package doc for the full set):
//   - output keys for a category are exactly its active unit set;
//   - every unit maps to every active unit of its category, itself
//     included (A→A is always the identity);
//   - derived ratios are exact: ratio(A→B) = factor(A)/factor(B);
//   - malformed static data panics; only a nil registry is an error.
//
// Complexity: O(Σ per category n·m) rational divisions, where n is the
// category's active-unit count and m its factor-table size.
func Build(reg Registry, schemes map[units.CategoryID]factors.Scheme, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if reg == nil {
		return nil, ErrNilRegistry
	}

	g := &Graph{
		categories:      reg.Categories(),
		currency:        o.CurrencyCategory,
		unitsByCategory: make(map[units.CategoryID][]units.Unit),
		unitIndex:       make(map[units.UnitID]units.Unit),
		ratios:          make(map[units.UnitID]map[units.UnitID]units.ConversionData),
	}

	active := reg.ActiveUnits()
	for _, cat := range g.categories {
		if cat.ID == g.currency {
			// The currency category is ordered but deliberately empty here:
			// this pass is single-shot and must not race the asynchronous
			// rate updater that fills it in later.
			g.unitsByCategory[cat.ID] = []units.Unit{}

			continue
		}

		list := append([]units.Unit(nil), active[cat.ID]...)
		sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
		g.unitsByCategory[cat.ID] = list

		if len(list) == 0 {
			continue
		}

		activeSet := make(map[units.UnitID]struct{}, len(list))
		for _, u := range list {
			activeSet[u.ID] = struct{}{}
			g.unitIndex[u.ID] = u
		}

		// Scheme dispatch happens once per category, not per unit.
		switch s := schemes[cat.ID].(type) {
		case factors.Linear:
			buildLinear(g, list, activeSet, s)
		case factors.Explicit:
			buildExplicit(g, list, activeSet, s)
		case nil:
			panic(fmt.Sprintf("ratiograph: category %d has active units but no scheme", cat.ID))
		default:
			panic(fmt.Sprintf("ratiograph: category %d has an unrecognized scheme %T", cat.ID, s))
		}
	}

	return g, nil
}

// buildLinear derives every pairwise ratio of one category by dividing
// scale factors. Factor-table entries for units outside the active set are
// legitimate divisors for nothing here — they are skipped, never emitted.
func buildLinear(g *Graph, list []units.Unit, activeSet map[units.UnitID]struct{}, s factors.Linear) {
	for _, u := range list {
		from, ok := s.Factor(u.ID)
		if !ok {
			panic(fmt.Sprintf("ratiograph: active unit %d has no scale factor in category %d", u.ID, u.Category))
		}

		conv := make(map[units.UnitID]units.ConversionData, len(list))
		s.Each(func(id units.UnitID, factor *big.Rat) {
			if _, isActive := activeSet[id]; !isActive {
				// Optional unit not selected for this profile: present in
				// the table, absent from the output.
				return
			}
			if factor.Sign() <= 0 {
				// A zero factor is a divide-by-zero in every derived
				// ratio; the table itself is broken.
				panic(fmt.Sprintf("ratiograph: non-positive scale factor for unit %d in category %d", id, u.Category))
			}
			conv[id] = units.ConversionData{
				Ratio:  new(big.Rat).Quo(from, factor),
				Offset: new(big.Rat),
			}
		})
		g.ratios[u.ID] = conv
	}
}

// buildExplicit copies tabulated affine triples verbatim, restricted to the
// active set on both sides.
func buildExplicit(g *Graph, list []units.Unit, activeSet map[units.UnitID]struct{}, s factors.Explicit) {
	for _, u := range list {
		pairs, ok := s.Pairwise[u.ID]
		if !ok {
			panic(fmt.Sprintf("ratiograph: active unit %d has no explicit transforms in category %d", u.ID, u.Category))
		}

		conv := make(map[units.UnitID]units.ConversionData, len(pairs))
		for id, d := range pairs {
			if _, isActive := activeSet[id]; !isActive {
				continue
			}
			conv[id] = d
		}
		g.ratios[u.ID] = conv
	}
}

// LoadData is the one-call convenience path: bind the static catalog to the
// given profile and build against the shared factor schemes. Each call
// produces an independent Graph; rebuild on a region change and hand the
// replacement to your readers wholesale.
func LoadData(p catalog.Profile, opts ...Option) (*Graph, error) {
	return Build(catalog.NewRegistry(p), factors.Schemes(), opts...)
}
