package catalog_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensura/unitgraph/catalog"
	"github.com/mensura/unitgraph/units"
)

// TestLoadProfile_RegionOnly verifies a minimal file resolves exactly like
// ProfileFor.
func TestLoadProfile_RegionOnly(t *testing.T) {
	p, err := catalog.LoadProfile(strings.NewReader("region: US\n"))
	require.NoError(t, err)

	want, err := catalog.ProfileFor("US")
	require.NoError(t, err)
	assert.Equal(t, want, p)
}

// TestLoadProfile_Overrides verifies explicit keys win over the derived
// predicates while absent keys keep them.
func TestLoadProfile_Overrides(t *testing.T) {
	src := strings.Join([]string{
		"region: GB",
		"watt_default: false",
		"fahrenheit: true",
	}, "\n")

	p, err := catalog.LoadProfile(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "GB", p.Region)
	assert.False(t, p.WattDefault, "explicit false overrides the GB default")
	assert.True(t, p.Fahrenheit, "explicit true overrides the GB default")
	assert.True(t, p.ImperialSpoons, "absent key keeps the derived value")
}

// TestLoadProfile_EnableOptional verifies extra optional units can be turned
// on for regions that would not have them.
func TestLoadProfile_EnableOptional(t *testing.T) {
	src := fmt.Sprintf("region: US\nenable_optional: [%d]\n", units.AreaPyeong)

	p, err := catalog.LoadProfile(strings.NewReader(src))
	require.NoError(t, err)

	assert.True(t, p.OptionalEnabled(units.AreaPyeong))
}

// TestLoadProfile_Errors walks the failure modes.
func TestLoadProfile_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"not yaml", "region: [unclosed", catalog.ErrBadProfile},
		{"no region", "watt_default: true\n", catalog.ErrBadRegion},
		{"bad region", "region: ZZZZ\n", catalog.ErrBadRegion},
		{"bad optional id", "region: US\nenable_optional: [0]\n", catalog.ErrBadProfile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.LoadProfile(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
