// The explicit affine table for temperature. Celsius, Fahrenheit and Kelvin
// are mutually affine but not proportional, so no base factor exists that a
// single division could turn into a correct transform; all 9 ordered pairs
// are tabulated instead.
//
// The offset-first flag encodes the order of operations each direction
// needs: F→C subtracts 32 before scaling by 5/9, C→F scales by 9/5 before
// adding 32. Identities are (1, 0, false) like everywhere else.

package factors

import (
	"math/big"

	"github.com/mensura/unitgraph/units"
)

// offsetFirst names the flag at call sites, mirroring how the table reads.
const offsetFirst = true

// affine assembles one explicit triple.
func affine(ratio, offset *big.Rat, first bool) units.ConversionData {
	return units.ConversionData{Ratio: ratio, Offset: offset, OffsetFirst: first}
}

func temperatureScheme() Explicit {
	var (
		nineFifths = frac(18, 10) // 1.8, the C→F slope
		fiveNinths = frac(10, 18) // 5/9, the F→C slope
	)

	return Explicit{
		Pairwise: map[units.UnitID]map[units.UnitID]units.ConversionData{
			units.TemperatureDegreesCelsius: {
				units.TemperatureDegreesCelsius:    units.Identity(),
				units.TemperatureDegreesFahrenheit: affine(nineFifths, whole(32), !offsetFirst),
				units.TemperatureKelvin:            affine(one, frac(27315, 100), !offsetFirst),
			},
			units.TemperatureDegreesFahrenheit: {
				units.TemperatureDegreesCelsius:    affine(fiveNinths, whole(-32), offsetFirst),
				units.TemperatureDegreesFahrenheit: units.Identity(),
				units.TemperatureKelvin:            affine(fiveNinths, frac(45967, 100), offsetFirst),
			},
			units.TemperatureKelvin: {
				units.TemperatureDegreesCelsius:    affine(one, frac(-27315, 100), offsetFirst),
				units.TemperatureDegreesFahrenheit: affine(nineFifths, frac(-45967, 100), !offsetFirst),
				units.TemperatureKelvin:            units.Identity(),
			},
		},
	}
}
