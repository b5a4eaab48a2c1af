package ratiograph_test

import (
	"fmt"

	"github.com/mensura/unitgraph/catalog"
	"github.com/mensura/unitgraph/ratiograph"
	"github.com/mensura/unitgraph/units"
)

// ExampleLoadData builds the graph for the US profile and reads one exact
// conversion ratio off it.
func ExampleLoadData() {
	profile, err := catalog.ProfileFor("US")
	if err != nil {
		panic(err)
	}
	graph, err := ratiograph.LoadData(profile)
	if err != nil {
		panic(err)
	}

	var length units.Category
	for _, c := range graph.LoadOrderedCategories() {
		if c.ID == units.Length {
			length = c
		}
	}

	var meter, kilometer units.Unit
	list, _ := graph.LoadOrderedUnits(length)
	for _, u := range list {
		switch u.ID {
		case units.LengthMeter:
			meter = u
		case units.LengthKilometer:
			kilometer = u
		}
	}

	ratios, _ := graph.LoadOrderedRatios(meter)
	fmt.Printf("1 %s = %s %s\n", meter.Abbreviation, ratios[kilometer].Ratio.RatString(), kilometer.Abbreviation)
	// Output:
	// 1 m = 1/1000 km
}
