package ratiograph_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensura/unitgraph/ratiograph"
	"github.com/mensura/unitgraph/units"
)

func currencyUnit(id units.UnitID, name string, order int) units.Unit {
	return units.Unit{ID: id, Category: units.Currency, Name: name, Abbreviation: name, Order: order}
}

// TestWithCategoryRatios_Populates verifies the currency category can be
// filled in after the build and reads back ordered and complete.
func TestWithCategoryRatios_Populates(t *testing.T) {
	g := mustLoad(t, "US")

	usd := currencyUnit(5001, "USD", 1)
	eur := currencyUnit(5002, "EUR", 2)
	table := map[units.UnitID]map[units.UnitID]units.ConversionData{
		usd.ID: {
			usd.ID: units.Identity(),
			eur.ID: {Ratio: big.NewRat(9, 10), Offset: new(big.Rat)},
		},
		eur.ID: {
			usd.ID: {Ratio: big.NewRat(10, 9), Offset: new(big.Rat)},
			eur.ID: units.Identity(),
		},
	}

	next, err := g.WithCategoryRatios(units.Currency, []units.Unit{usd, eur}, table)
	require.NoError(t, err)

	list, err := next.LoadOrderedUnits(category(t, next, units.Currency))
	require.NoError(t, err)
	assert.Equal(t, []units.Unit{usd, eur}, list)

	conv, err := next.LoadOrderedRatios(usd)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(9, 10).Cmp(conv[eur].Ratio))
}

// TestWithCategoryRatios_ReceiverUntouched verifies replacement semantics:
// readers of the old graph keep seeing the old state.
func TestWithCategoryRatios_ReceiverUntouched(t *testing.T) {
	g := mustLoad(t, "US")

	usd := currencyUnit(5001, "USD", 1)
	_, err := g.WithCategoryRatios(units.Currency, []units.Unit{usd},
		map[units.UnitID]map[units.UnitID]units.ConversionData{
			usd.ID: {usd.ID: units.Identity()},
		})
	require.NoError(t, err)

	list, err := g.LoadOrderedUnits(category(t, g, units.Currency))
	require.NoError(t, err)
	assert.Empty(t, list, "the original graph must stay empty")

	_, err = g.LoadOrderedRatios(usd)
	assert.ErrorIs(t, err, ratiograph.ErrUnknownUnit)
}

// TestWithCategoryRatios_OtherCategoriesShared verifies the untouched
// categories read identically through the replacement graph.
func TestWithCategoryRatios_OtherCategoriesShared(t *testing.T) {
	g := mustLoad(t, "US")

	usd := currencyUnit(5001, "USD", 1)
	next, err := g.WithCategoryRatios(units.Currency, []units.Unit{usd},
		map[units.UnitID]map[units.UnitID]units.ConversionData{
			usd.ID: {usd.ID: units.Identity()},
		})
	require.NoError(t, err)

	length := category(t, g, units.Length)
	before, err := g.LoadOrderedUnits(length)
	require.NoError(t, err)
	after, err := next.LoadOrderedUnits(length)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWithCategoryRatios_Errors(t *testing.T) {
	g := mustLoad(t, "US")

	_, err := g.WithCategoryRatios(9999, nil, nil)
	assert.ErrorIs(t, err, ratiograph.ErrUnknownCategory)

	stray := units.Unit{ID: 5001, Category: units.Length, Name: "stray"}
	_, err = g.WithCategoryRatios(units.Currency, []units.Unit{stray}, nil)
	assert.ErrorIs(t, err, ratiograph.ErrWrongCategory)
}
