// Scheme: the tagged variant dispatched once per category by the builder.

package factors

import (
	"fmt"
	"math/big"

	"github.com/mensura/unitgraph/units"
)

// Scheme is the per-category conversion rule: either Linear (derive ratios
// by division against a sparse factor table) or Explicit (copy tabulated
// affine triples verbatim). The builder type-switches on it exactly once
// per category.
type Scheme interface {
	scheme()
}

// Linear is the derived-ratio scheme. Factors maps every non-base unit of
// the category to its scale factor; Base names the implicit base unit,
// whose factor is 1 and is deliberately not stored.
type Linear struct {
	// Base is the category's implicit base unit (factor 1).
	Base units.UnitID

	// Factors holds "1 unit of key = value base units" for every other
	// unit in the category, active or optional.
	Factors map[units.UnitID]*big.Rat
}

func (Linear) scheme() {}

// Factor returns the scale factor for id, synthesizing 1 for the base unit.
// The second result is false when the category does not know the unit.
func (l Linear) Factor(id units.UnitID) (*big.Rat, bool) {
	if id == l.Base {
		return one, true
	}
	f, ok := l.Factors[id]

	return f, ok
}

// Each calls fn for every (unit, factor) pair in the table, base included.
// Iteration order is unspecified; callers build maps, not sequences.
func (l Linear) Each(fn func(id units.UnitID, factor *big.Rat)) {
	fn(l.Base, one)
	for id, f := range l.Factors {
		fn(id, f)
	}
}

// Explicit is the tabulated-affine scheme: Pairwise[from][to] is the
// verbatim transform for every ordered unit pair, identities included.
type Explicit struct {
	Pairwise map[units.UnitID]map[units.UnitID]units.ConversionData
}

func (Explicit) scheme() {}

// one is shared across lookups; never mutated.
var one = big.NewRat(1, 1)

// frac builds an exact rational from an int64 numerator and denominator.
func frac(num, den int64) *big.Rat { return big.NewRat(num, den) }

// whole builds an exact rational from an integer value.
func whole(v int64) *big.Rat { return big.NewRat(v, 1) }

// fracStr builds a rational from a "p/q" literal whose parts exceed int64.
// Malformed literals are a table bug, not a runtime condition.
func fracStr(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic(fmt.Sprintf("factors: malformed rational literal %q", s))
	}

	return r
}
