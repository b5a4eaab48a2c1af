package catalog_test

import (
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensura/unitgraph/catalog"
	"github.com/mensura/unitgraph/units"
)

func mustProfile(t *testing.T, code string) catalog.Profile {
	t.Helper()
	p, err := catalog.ProfileFor(code)
	require.NoError(t, err)

	return p
}

// TestCategories_Shape pins the category table: currency first, thirteen
// categories total, temperature the only one supporting negatives.
func TestCategories_Shape(t *testing.T) {
	cats := catalog.Categories()
	require.Len(t, cats, 13)

	assert.Equal(t, units.Currency, cats[0].ID)
	for _, c := range cats {
		assert.Equal(t, c.ID == units.Temperature, c.SupportsNegative, "%s", c.Name)
	}
}

// TestCategories_CopySemantics verifies callers cannot corrupt the table.
func TestCategories_CopySemantics(t *testing.T) {
	first := catalog.Categories()
	first[0].Name = "clobbered"

	assert.NotEqual(t, "clobbered", catalog.Categories()[0].Name)
}

// TestActiveUnits_NoCurrency verifies the designed exclusion: every category
// except currency has an active unit list.
func TestActiveUnits_NoCurrency(t *testing.T) {
	active := catalog.NewRegistry(mustProfile(t, "US")).ActiveUnits()

	_, ok := active[units.Currency]
	assert.False(t, ok, "currency must not appear in the static registry:\n%s", spew.Sdump(active[units.Currency]))
	assert.Len(t, active, 12)
}

// TestActiveUnits_CategoryConsistency verifies each unit is filed under its
// own category and ids are globally unique across the whole registry.
func TestActiveUnits_CategoryConsistency(t *testing.T) {
	active := catalog.NewRegistry(mustProfile(t, "KR")).ActiveUnits()

	seen := make(map[units.UnitID]units.Unit)
	for cat, list := range active {
		require.NotEmpty(t, list, "category %d", cat)
		for _, u := range list {
			assert.Equal(t, cat, u.Category, "%s filed under the wrong category", u.Name)
			if prev, dup := seen[u.ID]; dup {
				t.Fatalf("unit id %d declared twice:\n%s%s", u.ID, spew.Sdump(prev), spew.Sdump(u))
			}
			seen[u.ID] = u
		}
	}
}

// TestActiveUnits_OptionalFiltering verifies Pyeong exists exactly for the
// profiles that enable it.
func TestActiveUnits_OptionalFiltering(t *testing.T) {
	has := func(code string) bool {
		area := catalog.NewRegistry(mustProfile(t, code)).ActiveUnits()[units.Area]
		for _, u := range area {
			if u.ID == units.AreaPyeong {
				return true
			}
		}

		return false
	}

	assert.True(t, has("KR"))
	assert.True(t, has("KP"))
	assert.False(t, has("US"))
	assert.False(t, has("DE"))
}

// TestActiveUnits_DefaultFlags verifies every category carries exactly one
// default source and one default target for any region profile.
func TestActiveUnits_DefaultFlags(t *testing.T) {
	for _, code := range []string{"US", "GB", "DE", "KR", "BS"} {
		active := catalog.NewRegistry(mustProfile(t, code)).ActiveUnits()
		for cat, list := range active {
			var src, tgt int
			for _, u := range list {
				if u.IsConversionSource {
					src++
				}
				if u.IsConversionTarget {
					tgt++
				}
			}
			assert.Equal(t, 1, src, "region %s category %d sources:\n%s", code, cat, spew.Sdump(list))
			assert.Equal(t, 1, tgt, "region %s category %d targets:\n%s", code, cat, spew.Sdump(list))
		}
	}
}

// TestActiveUnits_RegionalDefaults spot-checks the predicate wiring on a few
// units whose defaults flip with the region.
func TestActiveUnits_RegionalDefaults(t *testing.T) {
	find := func(code string, cat units.CategoryID, id units.UnitID) units.Unit {
		for _, u := range catalog.NewRegistry(mustProfile(t, code)).ActiveUnits()[cat] {
			if u.ID == id {
				return u
			}
		}
		t.Fatalf("unit %d not active for %s", id, code)

		return units.Unit{}
	}

	// US: convert inches to centimeters, Fahrenheit on the target side.
	assert.True(t, find("US", units.Length, units.LengthInch).IsConversionTarget)
	assert.True(t, find("US", units.Length, units.LengthCentimeter).IsConversionSource)
	assert.True(t, find("US", units.Temperature, units.TemperatureDegreesCelsius).IsConversionSource)

	// DE: the other way around.
	assert.True(t, find("DE", units.Length, units.LengthInch).IsConversionSource)
	assert.True(t, find("DE", units.Length, units.LengthCentimeter).IsConversionTarget)
	assert.True(t, find("DE", units.Temperature, units.TemperatureDegreesFahrenheit).IsConversionSource)

	// GB: watt default. The imperial-spoon target predicate also requires
	// US customary, which GB is not, so neither teaspoon is the target and
	// milliliters keep the slot.
	assert.True(t, find("GB", units.Power, units.PowerWatt).IsConversionSource)
	assert.False(t, find("GB", units.Volume, units.VolumeTeaspoonUK).IsConversionTarget)
	assert.False(t, find("GB", units.Volume, units.VolumeTeaspoonUS).IsConversionTarget)
	assert.True(t, find("GB", units.Volume, units.VolumeMilliliter).IsConversionTarget)
}

// TestActiveUnits_DeclarationOrderKept verifies the registry hands units out
// unsorted; ordering is the graph builder's job, and tie resolution depends
// on declaration order surviving this boundary.
func TestActiveUnits_DeclarationOrderKept(t *testing.T) {
	data := catalog.NewRegistry(catalog.Profile{}).ActiveUnits()[units.Data]

	sorted := sort.SliceIsSorted(data, func(i, j int) bool { return data[i].Order < data[j].Order })
	assert.False(t, sorted, "data units should still be in declaration order, not sorted")

	idx := make(map[units.UnitID]int, len(data))
	for i, u := range data {
		idx[u.ID] = i
	}
	assert.Less(t, idx[units.DataGigabyte], idx[units.DataFloppyDisk],
		"gigabytes are declared before floppy disks and share order 13")
}

// TestActiveUnits_WhimsicalFlag verifies approximation-only units are marked.
func TestActiveUnits_WhimsicalFlag(t *testing.T) {
	active := catalog.NewRegistry(catalog.Profile{}).ActiveUnits()

	whimsical := map[units.UnitID]bool{}
	for _, list := range active {
		for _, u := range list {
			whimsical[u.ID] = u.IsWhimsical
		}
	}

	assert.True(t, whimsical[units.DataFloppyDisk])
	assert.True(t, whimsical[units.EnergyBanana])
	assert.True(t, whimsical[units.WeightElephant])
	assert.False(t, whimsical[units.LengthMeter])
	assert.False(t, whimsical[units.AngleGradian])
}
