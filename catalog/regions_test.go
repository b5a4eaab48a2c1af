// Package catalog_test validates the region predicate tables, profile
// derivation and YAML profile loading.
package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensura/unitgraph/catalog"
	"github.com/mensura/unitgraph/units"
)

// TestProfileFor_US verifies the customary-and-Fahrenheit baseline.
func TestProfileFor_US(t *testing.T) {
	p, err := catalog.ProfileFor("US")
	require.NoError(t, err)

	assert.Equal(t, "US", p.Region)
	assert.True(t, p.USCustomary)
	assert.True(t, p.Fahrenheit)
	assert.False(t, p.SI())
	assert.False(t, p.WattDefault)
	assert.False(t, p.OptionalEnabled(units.AreaPyeong))
}

// TestProfileFor_Canonicalization verifies lower-case codes resolve the same.
func TestProfileFor_Canonicalization(t *testing.T) {
	upper, err := catalog.ProfileFor("US")
	require.NoError(t, err)
	lower, err := catalog.ProfileFor("us")
	require.NoError(t, err)

	assert.Equal(t, upper.Region, lower.Region)
	assert.Equal(t, upper.USCustomary, lower.USCustomary)
}

// TestProfileFor_Liberia verifies the customary-without-carve-out member:
// Liberia is US-customary AND Fahrenheit.
func TestProfileFor_Liberia(t *testing.T) {
	p, err := catalog.ProfileFor("LR")
	require.NoError(t, err)

	assert.True(t, p.USCustomary)
	assert.True(t, p.Fahrenheit)
}

// TestProfileFor_FahrenheitOnly verifies regions that keep SI units but
// default to Fahrenheit (Bahamas, Cayman Islands).
func TestProfileFor_FahrenheitOnly(t *testing.T) {
	for _, code := range []string{"BS", "KY"} {
		p, err := catalog.ProfileFor(code)
		require.NoError(t, err, code)

		assert.False(t, p.USCustomary, code)
		assert.True(t, p.Fahrenheit, code)
	}
}

// TestProfileFor_GB verifies the watt-default and imperial-spoon quirks.
func TestProfileFor_GB(t *testing.T) {
	p, err := catalog.ProfileFor("GB")
	require.NoError(t, err)

	assert.True(t, p.SI())
	assert.False(t, p.Fahrenheit)
	assert.True(t, p.WattDefault)
	assert.True(t, p.ImperialSpoons)
}

// TestProfileFor_Korea verifies the Pyeong optional unit is enabled for
// both Korean regions and nowhere else.
func TestProfileFor_Korea(t *testing.T) {
	for _, code := range []string{"KR", "KP"} {
		p, err := catalog.ProfileFor(code)
		require.NoError(t, err, code)
		assert.True(t, p.OptionalEnabled(units.AreaPyeong), code)
	}

	de, err := catalog.ProfileFor("DE")
	require.NoError(t, err)
	assert.False(t, de.OptionalEnabled(units.AreaPyeong))
}

// TestProfileFor_SIBaseline verifies an uninvolved region gets the plain
// SI/Celsius profile.
func TestProfileFor_SIBaseline(t *testing.T) {
	p, err := catalog.ProfileFor("FR")
	require.NoError(t, err)

	assert.True(t, p.SI())
	assert.False(t, p.Fahrenheit)
	assert.False(t, p.WattDefault)
	assert.False(t, p.ImperialSpoons)
	assert.Nil(t, p.Optional)
}

// TestProfileFor_BadCode verifies made-up codes are rejected with the
// sentinel, not silently mapped to a default profile.
func TestProfileFor_BadCode(t *testing.T) {
	for _, code := range []string{"", "X", "USA!", "1234"} {
		_, err := catalog.ProfileFor(code)
		assert.ErrorIs(t, err, catalog.ErrBadRegion, "code %q", code)
	}
}
