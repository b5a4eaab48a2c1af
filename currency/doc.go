// Package currency fills the one category the ratio-graph builder
// deliberately leaves empty.
//
// Currency is registered like any other category but its conversion data is
// not static: rates come from an external collaborator at unpredictable
// times, and the builder's single synchronous pass must never race such an
// updater. The protocol is therefore:
//
//  1. Build the graph as usual — currency ends up registered with an empty
//     unit list and SupportsCategory(currency) == false.
//  2. When rates are available, Compile them into an ordered unit list and
//     a pairwise ratio table (rate arithmetic is the same derived-ratio
//     division the builder performs: ratio(A→B) = rate(A)/rate(B), both
//     expressed against one reference currency).
//  3. Apply the result, which returns a NEW graph via whole-structure
//     replacement; readers of the previous graph are undisturbed.
//
// Unlike the static factor tables, rates are runtime data from outside the
// process, so bad input here is an error to hand back, never a panic.
//
// Fetching itself (HTTP, caching, scheduling) is out of scope; implement
// Provider against whatever transport feeds you and keep this package free
// of I/O.
package currency
