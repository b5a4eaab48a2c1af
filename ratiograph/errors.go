// Sentinel error set for the ratiograph package. Tests and callers match
// with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX) where context helps.
// Panics are reserved for malformed static data detected during Build.

package ratiograph

import "errors"

var (
	// ErrNilRegistry indicates Build received a nil Registry.
	ErrNilRegistry = errors.New("ratiograph: registry is nil")

	// ErrUnknownCategory indicates a lookup referenced a category the
	// graph does not hold. The graph never synthesizes a default.
	ErrUnknownCategory = errors.New("ratiograph: unknown category")

	// ErrUnknownUnit indicates a lookup referenced a unit the graph does
	// not hold (never built, or filtered out by the active profile).
	ErrUnknownUnit = errors.New("ratiograph: unknown unit")

	// ErrWrongCategory indicates WithCategoryRatios was given units that
	// do not belong to the category being populated.
	ErrWrongCategory = errors.New("ratiograph: unit belongs to another category")
)
