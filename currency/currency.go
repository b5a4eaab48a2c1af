// Rate compilation and graph application.

package currency

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/mensura/unitgraph/ratiograph"
	"github.com/mensura/unitgraph/units"
)

var (
	// ErrNotCurrency indicates a rate references a unit outside the
	// currency category.
	ErrNotCurrency = errors.New("currency: unit is not a currency")

	// ErrBadRate indicates a missing or non-positive exchange rate.
	ErrBadRate = errors.New("currency: rate must be positive")

	// ErrDuplicateUnit indicates the same unit id appeared twice in one
	// rate set.
	ErrDuplicateUnit = errors.New("currency: duplicate unit in rate set")
)

// Rate states that 1 unit of Unit equals PerReference units of the rate
// set's reference currency. The reference itself appears as a Rate of 1.
type Rate struct {
	Unit         units.Unit
	PerReference *big.Rat
}

// Provider supplies the current rate set. Implementations own transport,
// caching and refresh policy; Compile and Apply only consume snapshots.
type Provider interface {
	Rates() ([]Rate, error)
}

// StaticProvider is the trivial Provider: a fixed rate set, handy for tests
// and for callers that do their own fetching.
type StaticProvider struct {
	rates []Rate
}

// NewStaticProvider copies the given rates into a fixed provider.
func NewStaticProvider(rates ...Rate) *StaticProvider {
	p := &StaticProvider{rates: make([]Rate, len(rates))}
	copy(p.rates, rates)

	return p
}

// Rates returns a copy of the fixed rate set.
func (p *StaticProvider) Rates() ([]Rate, error) {
	out := make([]Rate, len(p.rates))
	copy(out, p.rates)

	return out, nil
}

// Compile turns a rate set into the ordered currency unit list and the
// pairwise conversion table: ratio(A→B) = rate(A)/rate(B), offsets zero,
// identity on the diagonal. The list is stable-sorted by display order.
//
// Errors:
//   - ErrNotCurrency:   a unit's Category is not units.Currency.
//   - ErrBadRate:       a rate is nil, zero or negative.
//   - ErrDuplicateUnit: the same unit id occurs twice.
func Compile(rates []Rate) ([]units.Unit, map[units.UnitID]map[units.UnitID]units.ConversionData, error) {
	list := make([]units.Unit, 0, len(rates))
	byID := make(map[units.UnitID]*big.Rat, len(rates))
	for _, r := range rates {
		if r.Unit.Category != units.Currency {
			return nil, nil, fmt.Errorf("%w: unit %d", ErrNotCurrency, r.Unit.ID)
		}
		if r.PerReference == nil || r.PerReference.Sign() <= 0 {
			return nil, nil, fmt.Errorf("%w: unit %d", ErrBadRate, r.Unit.ID)
		}
		if _, seen := byID[r.Unit.ID]; seen {
			return nil, nil, fmt.Errorf("%w: unit %d", ErrDuplicateUnit, r.Unit.ID)
		}
		byID[r.Unit.ID] = r.PerReference
		list = append(list, r.Unit)
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })

	table := make(map[units.UnitID]map[units.UnitID]units.ConversionData, len(list))
	for _, from := range list {
		conv := make(map[units.UnitID]units.ConversionData, len(list))
		for _, to := range list {
			conv[to.ID] = units.ConversionData{
				Ratio:  new(big.Rat).Quo(byID[from.ID], byID[to.ID]),
				Offset: new(big.Rat),
			}
		}
		table[from.ID] = conv
	}

	return list, table, nil
}

// Apply fetches the provider's current rate set, compiles it, and returns a
// new graph with the currency category populated. The input graph is left
// untouched (whole-structure replacement).
func Apply(g *ratiograph.Graph, p Provider) (*ratiograph.Graph, error) {
	rates, err := p.Rates()
	if err != nil {
		return nil, fmt.Errorf("currency: fetching rates: %w", err)
	}

	list, table, err := Compile(rates)
	if err != nil {
		return nil, err
	}

	return g.WithCategoryRatios(units.Currency, list, table)
}
