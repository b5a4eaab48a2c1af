// Package ratiograph builds the all-pairs conversion-ratio graph: for every
// active unit, the exact transform to every other unit of its category.
//
// 🚀 What Build does
//
//	Given a Registry (ordered categories + active unit set) and the
//	per-category schemes from the factors package, Build:
//	  • stable-sorts each category's units by relative display order
//	    (ties keep declaration order);
//	  • Linear categories: derives ratio = factor(u)/factor(target) for
//	    every active target, skipping factor-table entries whose unit is
//	    not active (optional units serve as divisors only, never as keys);
//	  • Explicit categories: copies the tabulated affine triples verbatim;
//	  • records the currency category with an empty unit list and builds
//	    nothing for it — its rates arrive later, through whole-structure
//	    replacement (WithCategoryRatios), because Build itself is not
//	    re-entrant and must never race a rate updater.
//
// Failure semantics match the data's nature. The registry and factor tables
// are static, in-process declarations, so an inconsistency between them —
// a non-positive scale factor, an active unit with no table entry, an
// active category with no scheme — is a table bug, not a runtime condition:
// Build panics rather than recovering into a wrong graph. Caller-side
// lookups on the finished graph (unknown category, unknown unit) return
// not-found sentinels instead.
//
// Concurrency:
//
//	Build is synchronous and runs to completion on the calling goroutine;
//	it is NOT safe to invoke concurrently with itself. A finished Graph is
//	immutable: any number of goroutines may read it without locking, until
//	a locale change makes the caller build a replacement. WithCategoryRatios
//	follows the same discipline — it returns a new Graph and never mutates
//	the receiver, so readers of the old graph are undisturbed.
//
// There is no cancellation and no context: construction is a bounded,
// CPU-only pass over a small fixed data set with no I/O.
//
// Errors:
//
//	ErrNilRegistry     - Build was handed a nil Registry.
//	ErrUnknownCategory - lookup of a category the graph does not hold.
//	ErrUnknownUnit     - lookup of a unit the graph does not hold.
//	ErrWrongCategory   - WithCategoryRatios units contradict the category.
package ratiograph
