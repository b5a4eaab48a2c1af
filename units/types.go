// This file declares CategoryID, UnitID, Category, Unit and ConversionData,
// plus the Identity constructor and the affine Apply step.

package units

import "math/big"

// CategoryID identifies a category (one physical quantity) in the registry.
type CategoryID int

// Registered categories, in registry order. The numbering is part of the
// data contract: it is stable across rebuilds and regions.
const (
	Currency CategoryID = iota + 1
	Volume
	Length
	Weight
	Temperature
	Energy
	Area
	Speed
	Time
	Power
	Data
	Pressure
	Angle
)

// UnitID identifies a unit. Unit ids are unique across all categories,
// never only within one, so they can serve as flat lookup keys.
type UnitID int

// Category groups mutually convertible units of one physical quantity.
type Category struct {
	// ID is the unique identifier for this Category.
	ID CategoryID

	// Name is a neutral display-name handle (localization happens elsewhere).
	Name string

	// SupportsNegative reports whether negative values are meaningful for
	// this quantity (true only for temperature).
	SupportsNegative bool
}

// Unit is one measurement unit within a category.
//
// Order affects only display sorting, never conversion correctness.
// The three visibility booleans are independent: a unit may be the default
// conversion source, the default conversion target, and/or hidden behind an
// explicit enable (whimsical and regional units).
type Unit struct {
	// ID is the globally unique identifier for this Unit.
	ID UnitID

	// Category is the owning category; a unit belongs to exactly one.
	Category CategoryID

	// Name is a neutral display-name handle.
	Name string

	// Abbreviation is the short display handle (e.g. "km").
	Abbreviation string

	// Order is the relative display position within the category.
	Order int

	// IsConversionSource marks the default conversion-from unit.
	IsConversionSource bool

	// IsConversionTarget marks the default conversion-to unit.
	IsConversionTarget bool

	// IsWhimsical marks units hidden unless explicitly enabled.
	IsWhimsical bool
}

// ConversionData is the transform converting a value expressed in unit A
// into unit B:
//
//	f(x) = OffsetFirst ? Ratio·(x+Offset) : Ratio·x + Offset
//
// Ratio and Offset are exact rationals; callers must treat them as
// immutable (Apply never mutates its receiver or argument).
type ConversionData struct {
	// Ratio is the multiplicative factor.
	Ratio *big.Rat

	// Offset is the additive term (zero for derived-ratio categories).
	Offset *big.Rat

	// OffsetFirst applies Offset before Ratio when true;
	// after Ratio otherwise.
	OffsetFirst bool
}

// Identity returns the A→A transform: ratio 1, offset 0, offset applied last.
// Every unit's self-entry must equal Identity(), derived or explicit.
func Identity() ConversionData {
	return ConversionData{Ratio: big.NewRat(1, 1), Offset: new(big.Rat)}
}

// IsIdentity reports whether d is the identity transform.
// OffsetFirst is irrelevant when the offset is zero.
func (d ConversionData) IsIdentity() bool {
	if d.Ratio == nil || d.Offset == nil {
		return false
	}

	return d.Ratio.Cmp(one) == 0 && d.Offset.Sign() == 0
}

// Apply evaluates the affine map on x and returns a freshly allocated result.
//
// Complexity: O(1) rational operations.
func (d ConversionData) Apply(x *big.Rat) *big.Rat {
	out := new(big.Rat)
	if d.OffsetFirst {
		// Ratio·(x + Offset)
		out.Add(x, d.Offset)

		return out.Mul(out, d.Ratio)
	}
	// Ratio·x + Offset
	out.Mul(x, d.Ratio)

	return out.Add(out, d.Offset)
}

// one is the shared comparison constant; never mutated.
var one = big.NewRat(1, 1)
