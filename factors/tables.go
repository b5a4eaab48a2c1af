// The scale-factor tables for every linear category, plus the lazily built
// scheme index. A factor reads "1 unit of key = value base units"; the base
// unit of each category is named in the Linear literal and never listed.
//
// The constants are physical reference data. Keep them as exact fractions;
// do not "simplify" to floats, and do not reduce fractions by hand — the
// written form mirrors the reference source (e.g. 254/10000 for the inch).

package factors

import (
	"math/big"
	"sync"

	"github.com/mensura/unitgraph/units"
)

// areaScheme: base square meter.
func areaScheme() Linear {
	return Linear{
		Base: units.AreaSquareMeter,
		Factors: map[units.UnitID]*big.Rat{
			units.AreaAcre:             frac(40468564224, 10000000),
			units.AreaHectare:          whole(10000),
			units.AreaSquareCentimeter: frac(1, 10000),
			units.AreaSquareFoot:       frac(9290304, 100000000),
			units.AreaSquareInch:       frac(64516, 100000000),
			units.AreaSquareKilometer:  whole(1000000),
			units.AreaSquareMile:       frac(258998811033600, 100000000),
			units.AreaSquareMillimeter: frac(1, 1000000),
			units.AreaSquareYard:       frac(83612736, 100000000),
			units.AreaHand:             frac(12516104, 1000000000),
			units.AreaPaper:            frac(6032246, 100000000),
			units.AreaSoccerField:      frac(1086966, 100),
			units.AreaCastle:           whole(100000),
			units.AreaPyeong:           frac(400, 121),
		},
	}
}

// dataScheme: base megabyte (decimal; the binary prefixes carry the 1024
// powers in their numerators).
func dataScheme() Linear {
	return Linear{
		Base: units.DataMegabyte,
		Factors: map[units.UnitID]*big.Rat{
			units.DataBit:        frac(1, 8000000),
			units.DataByte:       frac(1, 1000000),
			units.DataKilobit:    frac(1, 8000),
			units.DataKilobyte:   frac(1, 1000),
			units.DataKibibits:   frac(1024, 8000000),
			units.DataKibibytes:  frac(1024, 1000000),
			units.DataMegabit:    frac(1, 8),
			units.DataMebibits:   frac(1048576, 8000000),
			units.DataMebibytes:  frac(1048576, 1000000),
			units.DataGigabit:    whole(125),
			units.DataGigabyte:   whole(1000),
			units.DataGibibits:   frac(1073741824, 8000000),
			units.DataGibibytes:  frac(1073741824, 1000000),
			units.DataTerabit:    whole(125000),
			units.DataTerabyte:   whole(1000000),
			units.DataTebibits:   frac(1099511627776, 8000000),
			units.DataTebibytes:  frac(1099511627776, 1000000),
			units.DataPetabit:    whole(125000000),
			units.DataPetabyte:   whole(1000000000),
			units.DataPebibits:   frac(1125899906842624, 8000000),
			units.DataPebibytes:  frac(1125899906842624, 1000000),
			units.DataExabits:    whole(125000000000),
			units.DataExabytes:   whole(1000000000000),
			units.DataExbibits:   frac(1152921504606846976, 8000000),
			units.DataExbibytes:  frac(1152921504606846976, 1000000),
			units.DataZetabits:   whole(125000000000000),
			units.DataZetabytes:  whole(1000000000000000),
			units.DataZebibits:   fracStr("1180591620717411303424/8000000"),
			units.DataZebibytes:  fracStr("1180591620717411303424/1000000"),
			units.DataYottabit:   whole(125000000000000000),
			units.DataYottabyte:  whole(1000000000000000000),
			units.DataYobibits:   fracStr("1208925819614629174706176/8000000"),
			units.DataYobibytes:  fracStr("1208925819614629174706176/1000000"),
			units.DataFloppyDisk: frac(150994944, 100000000),
			units.DataCD:         frac(734003200, 1000000),
			units.DataDVD:        frac(50465865728, 10000000),
		},
	}
}

// energyScheme: base joule.
func energyScheme() Linear {
	return Linear{
		Base: units.EnergyJoule,
		Factors: map[units.UnitID]*big.Rat{
			units.EnergyCalorie:            frac(4184, 1000),
			units.EnergyKilocalorie:        whole(4184),
			units.EnergyBritishThermalUnit: frac(10550559, 10000),
			units.EnergyKilojoule:          whole(1000),
			units.EnergyElectronVolt:       fracStr("1602176565/10000000000000000000000000000"),
			units.EnergyFootPound:          frac(13558179483314004, 10000000000000000),
			units.EnergyBattery:            whole(9000),
			units.EnergyBanana:             whole(439614),
			units.EnergySliceOfCake:        whole(1046700),
		},
	}
}

// lengthScheme: base meter.
func lengthScheme() Linear {
	return Linear{
		Base: units.LengthMeter,
		Factors: map[units.UnitID]*big.Rat{
			units.LengthInch:         frac(254, 10000),
			units.LengthFoot:         frac(3048, 10000),
			units.LengthYard:         frac(9144, 10000),
			units.LengthMile:         frac(1609344, 1000),
			units.LengthMicron:       frac(1, 1000000),
			units.LengthMillimeter:   frac(1, 1000),
			units.LengthNanometer:    frac(1, 1000000000),
			units.LengthCentimeter:   frac(1, 100),
			units.LengthKilometer:    whole(1000),
			units.LengthNauticalMile: whole(1852),
			units.LengthPaperclip:    frac(35052, 1000000),
			units.LengthHand:         frac(18669, 100000),
			units.LengthJumboJet:     whole(76),
		},
	}
}

// powerScheme: base watt.
func powerScheme() Linear {
	return Linear{
		Base: units.PowerWatt,
		Factors: map[units.UnitID]*big.Rat{
			units.PowerBritishThermalUnitPerMinute: frac(10550559, 600000),
			units.PowerFootPoundPerMinute:          frac(13558179483314004, 600000000000000000),
			units.PowerKilowatt:                    whole(1000),
			units.PowerHorsepower:                  frac(74569987158227022, 100000000000000),
			units.PowerLightBulb:                   whole(60),
			units.PowerHorse:                       frac(7457, 10),
			units.PowerTrainEngine:                 frac(2982799486329081, 1000000000),
		},
	}
}

// timeScheme: base second. The year is the Julian 365.25 days.
func timeScheme() Linear {
	return Linear{
		Base: units.TimeSecond,
		Factors: map[units.UnitID]*big.Rat{
			units.TimeDay:         whole(24 * 60 * 60),
			units.TimeWeek:        whole(7 * 24 * 60 * 60),
			units.TimeYear:        whole(1461 * 6 * 60 * 60), // 1461*6 h = 365.25 d
			units.TimeMillisecond: frac(1, 1000),
			units.TimeMicrosecond: frac(1, 1000000),
			units.TimeMinute:      whole(60),
			units.TimeHour:        whole(60 * 60),
		},
	}
}

// volumeScheme: base milliliter. The cubic centimeter is a distinct unit
// with factor 1 — same magnitude, separate identity.
func volumeScheme() Linear {
	return Linear{
		Base: units.VolumeMilliliter,
		Factors: map[units.UnitID]*big.Rat{
			units.VolumeCupUS:           frac(236588237, 1000000),
			units.VolumePintUS:          frac(473176473, 1000000),
			units.VolumePintUK:          frac(56826125, 100000),
			units.VolumeQuartUS:         frac(946352946, 1000000),
			units.VolumeQuartUK:         frac(11365225, 10000),
			units.VolumeGallonUS:        frac(3785411784, 1000000),
			units.VolumeGallonUK:        frac(454609, 100),
			units.VolumeLiter:           whole(1000),
			units.VolumeTeaspoonUS:      frac(3785411784, 768000000),
			units.VolumeTablespoonUS:    frac(1478676478125, 100000000000),
			units.VolumeCubicCentimeter: frac(1, 1),
			units.VolumeCubicYard:       frac(764554857984, 1000000),
			units.VolumeCubicMeter:      whole(1000000),
			units.VolumeCubicInch:       frac(16387064, 1000000),
			units.VolumeCubicFoot:       frac(28316846592, 1000000),
			units.VolumeFluidOunceUS:    frac(295735295625, 10000000000),
			units.VolumeFluidOunceUK:    frac(284130625, 10000000),
			units.VolumeTeaspoonUK:      frac(1420653125, 240000000),
			units.VolumeTablespoonUK:    frac(177581640625, 10000000000),
			units.VolumeCoffeeCup:       frac(2365882, 10000),
			units.VolumeBathtub:         frac(378541200, 1000),
			units.VolumeSwimmingPool:    whole(3750000000),
		},
	}
}

// weightScheme: base kilogram.
func weightScheme() Linear {
	return Linear{
		Base: units.WeightKilogram,
		Factors: map[units.UnitID]*big.Rat{
			units.WeightHectogram:  frac(1, 10),
			units.WeightDecagram:   frac(1, 100),
			units.WeightGram:       frac(1, 1000),
			units.WeightPound:      frac(45359237, 100000000),
			units.WeightOunce:      frac(45359237, 1600000000),
			units.WeightMilligram:  frac(1, 1000000),
			units.WeightCentigram:  frac(1, 100000),
			units.WeightDecigram:   frac(1, 10000),
			units.WeightLongTon:    frac(10160469088, 10000000),
			units.WeightTonne:      whole(1000),
			units.WeightStone:      frac(635029318, 100000000),
			units.WeightCarat:      frac(2, 10000),
			units.WeightShortTon:   frac(90718474, 100000),
			units.WeightSnowflake:  frac(2, 1000000),
			units.WeightSoccerBall: frac(4325, 10000),
			units.WeightElephant:   whole(4000),
			units.WeightWhale:      whole(90000),
		},
	}
}

// speedScheme: base centimeter per second.
func speedScheme() Linear {
	return Linear{
		Base: units.SpeedCentimetersPerSecond,
		Factors: map[units.UnitID]*big.Rat{
			units.SpeedFeetPerSecond:     frac(3048, 100),
			units.SpeedKilometersPerHour: frac(250, 9),
			units.SpeedKnot:              frac(463, 9),
			units.SpeedMach:              whole(34030),
			units.SpeedMetersPerSecond:   whole(100),
			units.SpeedMilesPerHour:      frac(447, 10),
			units.SpeedTurtle:            frac(894, 100),
			units.SpeedHorse:             frac(20115, 10),
			units.SpeedJet:               whole(24585),
		},
	}
}

// angleScheme: base degree.
func angleScheme() Linear {
	return Linear{
		Base: units.AngleDegree,
		Factors: map[units.UnitID]*big.Rat{
			units.AngleRadian:  frac(5729577951308233, 100000000000000),
			units.AngleGradian: frac(9, 10),
		},
	}
}

// pressureScheme: base atmosphere (101325 Pa).
func pressureScheme() Linear {
	return Linear{
		Base: units.PressureAtmosphere,
		Factors: map[units.UnitID]*big.Rat{
			units.PressureBar:                 frac(100000, 101325),
			units.PressureKiloPascal:          frac(1000, 101325),
			units.PressureMillimeterOfMercury: frac(1, 760),
			units.PressurePascal:              frac(1, 101325),
			units.PressurePSI:                 frac(10000, 146956),
		},
	}
}

var (
	schemesOnce sync.Once
	schemeIndex map[units.CategoryID]Scheme
)

// Schemes returns the scheme for every convertible category. The index is
// assembled on first use and shared thereafter: treat it and everything it
// references as read-only. Currency has no scheme — its ratios are compiled
// from rates by the currency package, never derived here.
func Schemes() map[units.CategoryID]Scheme {
	schemesOnce.Do(func() {
		schemeIndex = map[units.CategoryID]Scheme{
			units.Area:        areaScheme(),
			units.Data:        dataScheme(),
			units.Energy:      energyScheme(),
			units.Length:      lengthScheme(),
			units.Power:       powerScheme(),
			units.Time:        timeScheme(),
			units.Volume:      volumeScheme(),
			units.Weight:      weightScheme(),
			units.Speed:       speedScheme(),
			units.Angle:       angleScheme(),
			units.Pressure:    pressureScheme(),
			units.Temperature: temperatureScheme(),
		}
	})

	return schemeIndex
}
