// The category table, in registry order. This order is what
// LoadOrderedCategories ultimately reflects.

package catalog

import "github.com/mensura/unitgraph/units"

// categoryTable lists every registered category. SupportsNegative is true
// only for temperature: every other quantity is non-negative by nature.
var categoryTable = []units.Category{
	{ID: units.Currency, Name: "Currency"},
	{ID: units.Volume, Name: "Volume"},
	{ID: units.Length, Name: "Length"},
	{ID: units.Weight, Name: "Weight and Mass"},
	{ID: units.Temperature, Name: "Temperature", SupportsNegative: true},
	{ID: units.Energy, Name: "Energy"},
	{ID: units.Area, Name: "Area"},
	{ID: units.Speed, Name: "Speed"},
	{ID: units.Time, Name: "Time"},
	{ID: units.Power, Name: "Power"},
	{ID: units.Data, Name: "Data"},
	{ID: units.Pressure, Name: "Pressure"},
	{ID: units.Angle, Name: "Angle"},
}

// Categories returns the registered categories in registry order.
// The slice is a copy; callers may reorder it freely.
func Categories() []units.Category {
	out := make([]units.Category, len(categoryTable))
	copy(out, categoryTable)

	return out
}
