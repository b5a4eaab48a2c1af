// Graph: the immutable read-side surface handed to the calculation engine
// and presentation layer.

package ratiograph

import (
	"github.com/mensura/unitgraph/units"
)

// Graph holds the two derived indexes — category→ordered units and
// unit→unit→ConversionData — for one region profile.
//
// A Graph is immutable after construction. All accessors return copies of
// the ordered slices and freshly assembled maps, so callers can neither
// corrupt the graph nor observe a partial update; replacement happens by
// building a new Graph, never by mutating this one.
type Graph struct {
	categories      []units.Category
	currency        units.CategoryID
	unitsByCategory map[units.CategoryID][]units.Unit
	unitIndex       map[units.UnitID]units.Unit
	ratios          map[units.UnitID]map[units.UnitID]units.ConversionData
}

// LoadOrderedCategories returns every registered category in registry
// order, the currency category included (it is registered, merely empty).
func (g *Graph) LoadOrderedCategories() []units.Category {
	out := make([]units.Category, len(g.categories))
	copy(out, g.categories)

	return out
}

// LoadOrderedUnits returns the category's active units sorted ascending by
// relative order (stable under equal orders).
//
// Errors:
//   - ErrUnknownCategory: the category was never registered.
func (g *Graph) LoadOrderedUnits(c units.Category) ([]units.Unit, error) {
	list, ok := g.unitsByCategory[c.ID]
	if !ok {
		return nil, ErrUnknownCategory
	}

	out := make([]units.Unit, len(list))
	copy(out, list)

	return out, nil
}

// LoadOrderedRatios returns the full conversion table from u to every unit
// of its category, u itself included (identity).
//
// Errors:
//   - ErrUnknownUnit: u is not part of this graph's active set.
func (g *Graph) LoadOrderedRatios(u units.Unit) (map[units.Unit]units.ConversionData, error) {
	conv, ok := g.ratios[u.ID]
	if !ok {
		return nil, ErrUnknownUnit
	}

	out := make(map[units.Unit]units.ConversionData, len(conv))
	for id, d := range conv {
		out[g.unitIndex[id]] = d
	}

	return out, nil
}

// SupportsCategory reports whether the category is registered and is not
// the excluded currency category. Currency always answers false here; its
// conversions live outside this builder.
func (g *Graph) SupportsCategory(c units.Category) bool {
	if c.ID == g.currency {
		return false
	}
	_, ok := g.unitsByCategory[c.ID]

	return ok
}

// WithCategoryRatios returns a new Graph in which the given category's unit
// list and ratio table are replaced wholesale. The receiver is untouched —
// existing readers keep a consistent view — and the other categories' inner
// tables are shared, which is safe because they are never mutated.
//
// This is the hook the currency package uses to populate the excluded
// category once rates are available.
//
// Errors:
//   - ErrUnknownCategory: cat was never registered.
//   - ErrWrongCategory:   a supplied unit does not belong to cat.
func (g *Graph) WithCategoryRatios(
	cat units.CategoryID,
	list []units.Unit,
	ratios map[units.UnitID]map[units.UnitID]units.ConversionData,
) (*Graph, error) {
	if _, ok := g.unitsByCategory[cat]; !ok {
		return nil, ErrUnknownCategory
	}
	for _, u := range list {
		if u.Category != cat {
			return nil, ErrWrongCategory
		}
	}

	next := &Graph{
		categories:      g.categories,
		currency:        g.currency,
		unitsByCategory: make(map[units.CategoryID][]units.Unit, len(g.unitsByCategory)),
		unitIndex:       make(map[units.UnitID]units.Unit, len(g.unitIndex)+len(list)),
		ratios:          make(map[units.UnitID]map[units.UnitID]units.ConversionData, len(g.ratios)+len(list)),
	}
	for id, l := range g.unitsByCategory {
		next.unitsByCategory[id] = l
	}
	for id, u := range g.unitIndex {
		next.unitIndex[id] = u
	}
	for id, conv := range g.ratios {
		next.ratios[id] = conv
	}

	replacement := make([]units.Unit, len(list))
	copy(replacement, list)
	next.unitsByCategory[cat] = replacement
	for _, u := range list {
		next.unitIndex[u.ID] = u
	}
	for from, conv := range ratios {
		next.ratios[from] = conv
	}

	return next, nil
}
