// Package units_test validates the leaf-type contracts: identity transform
// shape and the order-of-operation semantics of the affine Apply step.
package units_test

import (
	"math/big"
	"testing"

	"github.com/mensura/unitgraph/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentity_Shape verifies Identity() is (ratio=1, offset=0, offsetFirst=false).
func TestIdentity_Shape(t *testing.T) {
	id := units.Identity()

	require.NotNil(t, id.Ratio)
	require.NotNil(t, id.Offset)
	assert.Zero(t, id.Ratio.Cmp(big.NewRat(1, 1)), "identity ratio must be 1")
	assert.Zero(t, id.Offset.Sign(), "identity offset must be 0")
	assert.False(t, id.OffsetFirst, "identity applies no offset, flag must be false")
	assert.True(t, id.IsIdentity())
}

// TestIdentity_ApplyIsNoOp verifies f(x) == x for the identity transform.
func TestIdentity_ApplyIsNoOp(t *testing.T) {
	x := big.NewRat(-3557, 113)
	got := units.Identity().Apply(x)

	assert.Zero(t, got.Cmp(x), "identity must return its input unchanged")
	assert.Zero(t, x.Cmp(big.NewRat(-3557, 113)), "Apply must not mutate its argument")
}

// TestApply_OffsetLast checks f(x) = ratio·x + offset (Celsius→Fahrenheit shape).
func TestApply_OffsetLast(t *testing.T) {
	d := units.ConversionData{
		Ratio:  big.NewRat(18, 10),
		Offset: big.NewRat(32, 1),
	}

	// 100°C → 212°F
	got := d.Apply(big.NewRat(100, 1))
	assert.Zero(t, got.Cmp(big.NewRat(212, 1)), "100·1.8+32 must equal 212")
}

// TestApply_OffsetFirst checks f(x) = ratio·(x+offset) (Fahrenheit→Celsius shape).
func TestApply_OffsetFirst(t *testing.T) {
	d := units.ConversionData{
		Ratio:       big.NewRat(10, 18),
		Offset:      big.NewRat(-32, 1),
		OffsetFirst: true,
	}

	// 212°F → 100°C
	got := d.Apply(big.NewRat(212, 1))
	assert.Zero(t, got.Cmp(big.NewRat(100, 1)), "(212-32)·5/9 must equal 100")
}

// TestIsIdentity_Negative ensures non-identity transforms are not misreported.
func TestIsIdentity_Negative(t *testing.T) {
	notID := units.ConversionData{Ratio: big.NewRat(2, 1), Offset: new(big.Rat)}
	assert.False(t, notID.IsIdentity())

	withOffset := units.ConversionData{Ratio: big.NewRat(1, 1), Offset: big.NewRat(1, 1)}
	assert.False(t, withOffset.IsIdentity())

	var zero units.ConversionData
	assert.False(t, zero.IsIdentity(), "zero value carries nil rationals, never identity")
}
