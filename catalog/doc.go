// Package catalog is the unit & category registry: the declarative side of
// the conversion data model.
//
// It owns three kinds of static data:
//
//   - the category table, in registry order (Currency first, Angle last);
//   - per-category unit declarations — identity, display order and the three
//     visibility booleans, some of which depend on the active region;
//   - the region predicate tables: which regions default to US-customary
//     units, which default to Fahrenheit, and which enable optional regional
//     units (e.g. Pyeong in KR/KP).
//
// None of this is algorithmic. The region-dependent visibility logic is
// deliberately collapsed into declarative sets (regionSet + the optional-unit
// table) rather than scattered per-unit boolean expressions, so adding a
// region is a one-line table edit.
//
// A Profile captures everything region-dependent. Obtain one from a two-letter
// region code (ProfileFor, validated via golang.org/x/text/language) or from a
// YAML profile file (LoadProfile). A Registry bound to a Profile then answers
// the two questions the graph builder asks:
//
//	reg := catalog.NewRegistry(profile)
//	reg.Categories()  // ordered []units.Category
//	reg.ActiveUnits() // map[units.CategoryID][]units.Unit, unsorted
//
// ActiveUnits output is the *active unit set*: units that exist for this
// profile. Whimsical units are present with IsWhimsical=true (hiding them is
// a presentation concern); optional regional units are present only when the
// profile enables them. The currency category never has an entry — its units
// are populated by the currency package after the graph is built.
//
// Errors:
//
//	ErrBadRegion  - region code is not a valid ISO 3166-1 region.
//	ErrBadProfile - profile file failed to parse or references unknown data.
package catalog
