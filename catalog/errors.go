// Sentinel error set for the catalog package. Callers match with errors.Is;
// context is added via fmt.Errorf("...: %w", ErrX) at the failure site.

package catalog

import "errors"

var (
	// ErrBadRegion indicates the supplied region code is not a valid
	// ISO 3166-1 region identifier.
	ErrBadRegion = errors.New("catalog: invalid region code")

	// ErrBadProfile indicates a profile file could not be parsed or
	// references data the registry does not declare.
	ErrBadProfile = errors.New("catalog: invalid profile")
)
