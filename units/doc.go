// Package units declares the leaf types of the conversion data model:
// Category, Unit, and ConversionData.
//
// These types are plain comparable values with no behavior beyond the
// affine application step of ConversionData. They are produced by the
// catalog and factors packages and consumed by ratiograph; nothing in
// this package allocates shared state or takes locks.
//
// Identity rules:
//
//   - A Category is identified by its CategoryID, unique across the registry.
//   - A Unit is identified by its UnitID, unique across ALL categories
//     (unit ids double as flat lookup keys).
//   - A Unit belongs to exactly one Category; conversion data only ever
//     relates units of the same category.
//
// ConversionData expresses every supported conversion as a single linear map
//
//	f(x) = OffsetFirst ? Ratio·(x+Offset) : Ratio·x + Offset
//
// which degenerates to Ratio·x for purely multiplicative categories and
// covers the mutually affine temperature scales via the OffsetFirst flag.
package units
