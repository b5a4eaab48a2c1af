// Package factors holds the two static data tables behind the ratio graph:
// per-category scale factors and the explicit affine table for temperature.
//
// Each category carries exactly one conversion Scheme, a tagged variant:
//
//   - Linear — a sparse map of exact rational scale factors relative to the
//     category's implicit base unit ("1 unit of X equals factor units of
//     base"). The base unit's factor is 1 by convention and is never stored;
//     Linear knows its base id and synthesizes the 1 on lookup/iteration.
//
//   - Explicit — a dense per-unit-pair table of (ratio, offset, offset-first)
//     triples. Used when the units are mutually affine but not proportional:
//     no single base factor exists that a division could recover, so every
//     ordered pair is tabulated. Temperature is the only such category.
//
// The scheme is what makes the dispatch a per-category decision instead of a
// per-unit branch inside the builder loop.
//
// All constants are exact fractions, copied from physical reference data.
// They must stay exact — a float64 restatement would compound rounding error
// across derived ratios. Values with numerators beyond int64 (the zebi/yobi
// data units) are written as "p/q" strings.
//
// Lifecycle: the tables are assembled once, lazily, behind a sync.Once guard
// (Schemes). The returned map and everything reachable from it is immutable;
// callers must not modify the rationals.
package factors
