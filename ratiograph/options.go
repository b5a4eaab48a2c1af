// Functional options for Build.

package ratiograph

import "github.com/mensura/unitgraph/units"

// Options configures graph construction. Zero customization is the common
// case; the struct exists so the option set can grow without breaking Build.
type Options struct {
	// CurrencyCategory names the category Build records with an empty
	// unit list and otherwise skips entirely.
	CurrencyCategory units.CategoryID
}

// Option mutates Options before construction starts.
type Option func(*Options)

// defaultOptions returns the baseline configuration: the registry's
// currency category is the designed exclusion.
func defaultOptions() Options {
	return Options{CurrencyCategory: units.Currency}
}

// WithCurrencyCategory overrides which category is treated as the
// asynchronously populated exclusion. Useful in tests that model the
// exclusion with a synthetic registry.
func WithCurrencyCategory(id units.CategoryID) Option {
	return func(o *Options) { o.CurrencyCategory = id }
}
