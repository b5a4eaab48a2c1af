// Package unitgraph builds the all-pairs conversion tables behind a
// measurement-unit converter: categories, units, and for every unit the
// exact rational transform to every other unit in its category.
//
// 🚀 What is unitgraph?
//
//	An in-process, exact-arithmetic data model that brings together:
//		• A declarative registry: 13 categories, their units, display order
//		  and region-dependent visibility
//		• Sparse scale-factor tables (one implicit base unit per category)
//		• An explicit affine table for temperature (ratio, offset, offset-first)
//		• A builder that turns the above into immutable category→units and
//		  unit→unit→ConversionData lookup indexes
//
// ✨ Why choose unitgraph?
//
//   - Exact – every factor is a rational (math/big.Rat), so derived ratios
//     never accumulate floating-point error
//   - Region-aware – US-customary vs SI defaults, Fahrenheit regions and
//     optional regional units come from declarative predicate tables
//   - Read-safe – built indexes are immutable; any number of readers, no
//     writers, wholesale replacement on a locale change
//
// Under the hood, everything is organized under five subpackages:
//
//	units/      — Category, Unit and ConversionData leaf types
//	catalog/    — unit & category registry, region profiles, YAML loading
//	factors/    — per-category conversion schemes (linear vs explicit)
//	ratiograph/ — the graph builder and the read-side lookup surface
//	currency/   — rate compilation for the deliberately excluded category
//
// Quick example:
//
//	profile, _ := catalog.ProfileFor("US")
//	g, _ := ratiograph.LoadData(profile)
//	ratios, _ := g.LoadOrderedRatios(meter)
//	// ratios[kilometer].Ratio == 1/1000 (1 m = 0.001 km)
//
// Dive into each package's doc.go for contracts, invariants and examples.
//
//	go get github.com/mensura/unitgraph
package unitgraph
