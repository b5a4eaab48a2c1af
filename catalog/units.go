// Per-category unit declarations. This is deliberately a flat restatement of
// the registry data: identity, neutral display handles, relative order and
// visibility flags. Only the default-source/default-target flags and the
// optional regional units vary with the Profile.
//
// Orders are not required to be unique; ties are resolved by declaration
// order (the builder sorts stably).

package catalog

import "github.com/mensura/unitgraph/units"

func areaUnits(p Profile) []units.Unit {
	list := []units.Unit{
		{ID: units.AreaAcre, Category: units.Area, Name: "Acre", Abbreviation: "ac", Order: 9},
		{ID: units.AreaHectare, Category: units.Area, Name: "Hectare", Abbreviation: "ha", Order: 4},
		{ID: units.AreaSquareCentimeter, Category: units.Area, Name: "Square centimeter", Abbreviation: "cm²", Order: 2},
		{ID: units.AreaSquareFoot, Category: units.Area, Name: "Square foot", Abbreviation: "ft²", Order: 7, IsConversionSource: p.SI(), IsConversionTarget: p.USCustomary},
		{ID: units.AreaSquareInch, Category: units.Area, Name: "Square inch", Abbreviation: "in²", Order: 6},
		{ID: units.AreaSquareKilometer, Category: units.Area, Name: "Square kilometer", Abbreviation: "km²", Order: 5},
		{ID: units.AreaSquareMeter, Category: units.Area, Name: "Square meter", Abbreviation: "m²", Order: 3, IsConversionSource: p.USCustomary, IsConversionTarget: p.SI()},
		{ID: units.AreaSquareMile, Category: units.Area, Name: "Square mile", Abbreviation: "mi²", Order: 10},
		{ID: units.AreaSquareMillimeter, Category: units.Area, Name: "Square millimeter", Abbreviation: "mm²", Order: 1},
		{ID: units.AreaSquareYard, Category: units.Area, Name: "Square yard", Abbreviation: "yd²", Order: 8},
		{ID: units.AreaHand, Category: units.Area, Name: "Hands", Abbreviation: "hands", Order: 11, IsWhimsical: true},
		{ID: units.AreaPaper, Category: units.Area, Name: "Paper", Abbreviation: "paper", Order: 12, IsWhimsical: true},
		{ID: units.AreaSoccerField, Category: units.Area, Name: "Soccer fields", Abbreviation: "soccer fields", Order: 13, IsWhimsical: true},
		{ID: units.AreaCastle, Category: units.Area, Name: "Castles", Abbreviation: "castles", Order: 14, IsWhimsical: true},
	}
	if p.OptionalEnabled(units.AreaPyeong) {
		list = append(list, units.Unit{ID: units.AreaPyeong, Category: units.Area, Name: "Pyeong", Abbreviation: "pyeong", Order: 15})
	}

	return list
}

func dataUnits(Profile) []units.Unit {
	return []units.Unit{
		{ID: units.DataBit, Category: units.Data, Name: "Bits", Abbreviation: "bit", Order: 1},
		{ID: units.DataByte, Category: units.Data, Name: "Bytes", Abbreviation: "B", Order: 2},
		{ID: units.DataExabits, Category: units.Data, Name: "Exabits", Abbreviation: "Ebit", Order: 23},
		{ID: units.DataExabytes, Category: units.Data, Name: "Exabytes", Abbreviation: "EB", Order: 25},
		{ID: units.DataExbibits, Category: units.Data, Name: "Exbibits", Abbreviation: "Eibit", Order: 24},
		{ID: units.DataExbibytes, Category: units.Data, Name: "Exbibytes", Abbreviation: "EiB", Order: 26},
		{ID: units.DataGibibits, Category: units.Data, Name: "Gibibits", Abbreviation: "Gibit", Order: 12},
		{ID: units.DataGibibytes, Category: units.Data, Name: "Gibibytes", Abbreviation: "GiB", Order: 14},
		{ID: units.DataGigabit, Category: units.Data, Name: "Gigabits", Abbreviation: "Gbit", Order: 11},
		{ID: units.DataGigabyte, Category: units.Data, Name: "Gigabytes", Abbreviation: "GB", Order: 13, IsConversionSource: true},
		{ID: units.DataKibibits, Category: units.Data, Name: "Kibibits", Abbreviation: "Kibit", Order: 4},
		{ID: units.DataKibibytes, Category: units.Data, Name: "Kibibytes", Abbreviation: "KiB", Order: 6},
		{ID: units.DataKilobit, Category: units.Data, Name: "Kilobits", Abbreviation: "kbit", Order: 3},
		{ID: units.DataKilobyte, Category: units.Data, Name: "Kilobytes", Abbreviation: "kB", Order: 5},
		{ID: units.DataMebibits, Category: units.Data, Name: "Mebibits", Abbreviation: "Mibit", Order: 8},
		{ID: units.DataMebibytes, Category: units.Data, Name: "Mebibytes", Abbreviation: "MiB", Order: 10},
		{ID: units.DataMegabit, Category: units.Data, Name: "Megabits", Abbreviation: "Mbit", Order: 7},
		{ID: units.DataMegabyte, Category: units.Data, Name: "Megabytes", Abbreviation: "MB", Order: 9, IsConversionTarget: true},
		{ID: units.DataPebibits, Category: units.Data, Name: "Pebibits", Abbreviation: "Pibit", Order: 20},
		{ID: units.DataPebibytes, Category: units.Data, Name: "Pebibytes", Abbreviation: "PiB", Order: 22},
		{ID: units.DataPetabit, Category: units.Data, Name: "Petabits", Abbreviation: "Pbit", Order: 19},
		{ID: units.DataPetabyte, Category: units.Data, Name: "Petabytes", Abbreviation: "PB", Order: 21},
		{ID: units.DataTebibits, Category: units.Data, Name: "Tebibits", Abbreviation: "Tibit", Order: 16},
		{ID: units.DataTebibytes, Category: units.Data, Name: "Tebibytes", Abbreviation: "TiB", Order: 18},
		{ID: units.DataTerabit, Category: units.Data, Name: "Terabits", Abbreviation: "Tbit", Order: 15},
		{ID: units.DataTerabyte, Category: units.Data, Name: "Terabytes", Abbreviation: "TB", Order: 17},
		{ID: units.DataYobibits, Category: units.Data, Name: "Yobibits", Abbreviation: "Yibit", Order: 32},
		{ID: units.DataYobibytes, Category: units.Data, Name: "Yobibytes", Abbreviation: "YiB", Order: 34},
		{ID: units.DataYottabit, Category: units.Data, Name: "Yottabits", Abbreviation: "Ybit", Order: 31},
		{ID: units.DataYottabyte, Category: units.Data, Name: "Yottabytes", Abbreviation: "YB", Order: 33},
		{ID: units.DataZebibits, Category: units.Data, Name: "Zebibits", Abbreviation: "Zibit", Order: 28},
		{ID: units.DataZebibytes, Category: units.Data, Name: "Zebibytes", Abbreviation: "ZiB", Order: 30},
		{ID: units.DataZetabits, Category: units.Data, Name: "Zettabits", Abbreviation: "Zbit", Order: 27},
		{ID: units.DataZetabytes, Category: units.Data, Name: "Zettabytes", Abbreviation: "ZB", Order: 29},
		{ID: units.DataFloppyDisk, Category: units.Data, Name: "Floppy disks", Abbreviation: "floppy disks", Order: 13, IsWhimsical: true},
		{ID: units.DataCD, Category: units.Data, Name: "CDs", Abbreviation: "CDs", Order: 14, IsWhimsical: true},
		{ID: units.DataDVD, Category: units.Data, Name: "DVDs", Abbreviation: "DVDs", Order: 15, IsWhimsical: true},
	}
}

func energyUnits(Profile) []units.Unit {
	return []units.Unit{
		{ID: units.EnergyBritishThermalUnit, Category: units.Energy, Name: "British thermal units", Abbreviation: "BTU", Order: 7},
		{ID: units.EnergyCalorie, Category: units.Energy, Name: "Calories", Abbreviation: "cal", Order: 4},
		{ID: units.EnergyElectronVolt, Category: units.Energy, Name: "Electron volts", Abbreviation: "eV", Order: 1},
		{ID: units.EnergyFootPound, Category: units.Energy, Name: "Foot-pounds", Abbreviation: "ft·lb", Order: 6},
		{ID: units.EnergyJoule, Category: units.Energy, Name: "Joules", Abbreviation: "J", Order: 2, IsConversionSource: true},
		{ID: units.EnergyKilocalorie, Category: units.Energy, Name: "Kilocalories", Abbreviation: "kcal", Order: 5, IsConversionTarget: true},
		{ID: units.EnergyKilojoule, Category: units.Energy, Name: "Kilojoules", Abbreviation: "kJ", Order: 3},
		{ID: units.EnergyBattery, Category: units.Energy, Name: "Batteries", Abbreviation: "batteries", Order: 8, IsWhimsical: true},
		{ID: units.EnergyBanana, Category: units.Energy, Name: "Bananas", Abbreviation: "bananas", Order: 9, IsWhimsical: true},
		{ID: units.EnergySliceOfCake, Category: units.Energy, Name: "Slices of cake", Abbreviation: "cake slices", Order: 10, IsWhimsical: true},
	}
}

func lengthUnits(p Profile) []units.Unit {
	return []units.Unit{
		{ID: units.LengthCentimeter, Category: units.Length, Name: "Centimeters", Abbreviation: "cm", Order: 4, IsConversionSource: p.USCustomary, IsConversionTarget: p.SI()},
		{ID: units.LengthFoot, Category: units.Length, Name: "Feet", Abbreviation: "ft", Order: 8},
		{ID: units.LengthInch, Category: units.Length, Name: "Inches", Abbreviation: "in", Order: 7, IsConversionSource: p.SI(), IsConversionTarget: p.USCustomary},
		{ID: units.LengthKilometer, Category: units.Length, Name: "Kilometers", Abbreviation: "km", Order: 6},
		{ID: units.LengthMeter, Category: units.Length, Name: "Meters", Abbreviation: "m", Order: 5},
		{ID: units.LengthMicron, Category: units.Length, Name: "Microns", Abbreviation: "µm", Order: 2},
		{ID: units.LengthMile, Category: units.Length, Name: "Miles", Abbreviation: "mi", Order: 10},
		{ID: units.LengthMillimeter, Category: units.Length, Name: "Millimeters", Abbreviation: "mm", Order: 3},
		{ID: units.LengthNanometer, Category: units.Length, Name: "Nanometers", Abbreviation: "nm", Order: 1},
		{ID: units.LengthNauticalMile, Category: units.Length, Name: "Nautical miles", Abbreviation: "nmi", Order: 11},
		{ID: units.LengthYard, Category: units.Length, Name: "Yards", Abbreviation: "yd", Order: 9},
		{ID: units.LengthPaperclip, Category: units.Length, Name: "Paperclips", Abbreviation: "paperclips", Order: 12, IsWhimsical: true},
		{ID: units.LengthHand, Category: units.Length, Name: "Hands", Abbreviation: "hands", Order: 13, IsWhimsical: true},
		{ID: units.LengthJumboJet, Category: units.Length, Name: "Jumbo jets", Abbreviation: "jumbo jets", Order: 14, IsWhimsical: true},
	}
}

func powerUnits(p Profile) []units.Unit {
	return []units.Unit{
		{ID: units.PowerBritishThermalUnitPerMinute, Category: units.Power, Name: "BTUs per minute", Abbreviation: "BTU/min", Order: 5},
		{ID: units.PowerFootPoundPerMinute, Category: units.Power, Name: "Foot-pounds per minute", Abbreviation: "ft·lb/min", Order: 4},
		{ID: units.PowerHorsepower, Category: units.Power, Name: "Horsepower", Abbreviation: "hp", Order: 3, IsConversionTarget: true},
		{ID: units.PowerKilowatt, Category: units.Power, Name: "Kilowatts", Abbreviation: "kW", Order: 2, IsConversionSource: !p.WattDefault},
		{ID: units.PowerWatt, Category: units.Power, Name: "Watts", Abbreviation: "W", Order: 1, IsConversionSource: p.WattDefault},
		{ID: units.PowerLightBulb, Category: units.Power, Name: "Light bulbs", Abbreviation: "light bulbs", Order: 6, IsWhimsical: true},
		{ID: units.PowerHorse, Category: units.Power, Name: "Horses", Abbreviation: "horses", Order: 7, IsWhimsical: true},
		{ID: units.PowerTrainEngine, Category: units.Power, Name: "Train engines", Abbreviation: "train engines", Order: 8, IsWhimsical: true},
	}
}

func temperatureUnits(p Profile) []units.Unit {
	return []units.Unit{
		{ID: units.TemperatureDegreesCelsius, Category: units.Temperature, Name: "Celsius", Abbreviation: "°C", Order: 1, IsConversionSource: p.Fahrenheit, IsConversionTarget: !p.Fahrenheit},
		{ID: units.TemperatureDegreesFahrenheit, Category: units.Temperature, Name: "Fahrenheit", Abbreviation: "°F", Order: 2, IsConversionSource: !p.Fahrenheit, IsConversionTarget: p.Fahrenheit},
		{ID: units.TemperatureKelvin, Category: units.Temperature, Name: "Kelvin", Abbreviation: "K", Order: 3},
	}
}

func timeUnits(Profile) []units.Unit {
	return []units.Unit{
		{ID: units.TimeDay, Category: units.Time, Name: "Days", Abbreviation: "d", Order: 6},
		{ID: units.TimeHour, Category: units.Time, Name: "Hours", Abbreviation: "h", Order: 5, IsConversionSource: true},
		{ID: units.TimeMicrosecond, Category: units.Time, Name: "Microseconds", Abbreviation: "µs", Order: 1},
		{ID: units.TimeMillisecond, Category: units.Time, Name: "Milliseconds", Abbreviation: "ms", Order: 2},
		{ID: units.TimeMinute, Category: units.Time, Name: "Minutes", Abbreviation: "min", Order: 4, IsConversionTarget: true},
		{ID: units.TimeSecond, Category: units.Time, Name: "Seconds", Abbreviation: "s", Order: 3},
		{ID: units.TimeWeek, Category: units.Time, Name: "Weeks", Abbreviation: "wk", Order: 7},
		{ID: units.TimeYear, Category: units.Time, Name: "Years", Abbreviation: "yr", Order: 8},
	}
}

func speedUnits(p Profile) []units.Unit {
	return []units.Unit{
		{ID: units.SpeedCentimetersPerSecond, Category: units.Speed, Name: "Centimeters per second", Abbreviation: "cm/s", Order: 1},
		{ID: units.SpeedFeetPerSecond, Category: units.Speed, Name: "Feet per second", Abbreviation: "ft/s", Order: 4},
		{ID: units.SpeedKilometersPerHour, Category: units.Speed, Name: "Kilometers per hour", Abbreviation: "km/h", Order: 3, IsConversionSource: p.USCustomary, IsConversionTarget: p.SI()},
		{ID: units.SpeedKnot, Category: units.Speed, Name: "Knots", Abbreviation: "kn", Order: 6},
		{ID: units.SpeedMach, Category: units.Speed, Name: "Mach", Abbreviation: "Ma", Order: 7},
		{ID: units.SpeedMetersPerSecond, Category: units.Speed, Name: "Meters per second", Abbreviation: "m/s", Order: 2},
		{ID: units.SpeedMilesPerHour, Category: units.Speed, Name: "Miles per hour", Abbreviation: "mph", Order: 5, IsConversionSource: p.SI(), IsConversionTarget: p.USCustomary},
		{ID: units.SpeedTurtle, Category: units.Speed, Name: "Turtles", Abbreviation: "turtles", Order: 8, IsWhimsical: true},
		{ID: units.SpeedHorse, Category: units.Speed, Name: "Horses", Abbreviation: "horses", Order: 9, IsWhimsical: true},
		{ID: units.SpeedJet, Category: units.Speed, Name: "Jets", Abbreviation: "jets", Order: 10, IsWhimsical: true},
	}
}

func volumeUnits(p Profile) []units.Unit {
	return []units.Unit{
		{ID: units.VolumeCubicCentimeter, Category: units.Volume, Name: "Cubic centimeters", Abbreviation: "cm³", Order: 2},
		{ID: units.VolumeCubicFoot, Category: units.Volume, Name: "Cubic feet", Abbreviation: "ft³", Order: 13},
		{ID: units.VolumeCubicInch, Category: units.Volume, Name: "Cubic inches", Abbreviation: "in³", Order: 12},
		{ID: units.VolumeCubicMeter, Category: units.Volume, Name: "Cubic meters", Abbreviation: "m³", Order: 4},
		{ID: units.VolumeCubicYard, Category: units.Volume, Name: "Cubic yards", Abbreviation: "yd³", Order: 14},
		{ID: units.VolumeCupUS, Category: units.Volume, Name: "Cups (US)", Abbreviation: "cup (US)", Order: 8},
		{ID: units.VolumeFluidOunceUK, Category: units.Volume, Name: "Fluid ounces (UK)", Abbreviation: "fl oz (UK)", Order: 17},
		{ID: units.VolumeFluidOunceUS, Category: units.Volume, Name: "Fluid ounces (US)", Abbreviation: "fl oz (US)", Order: 7},
		{ID: units.VolumeGallonUK, Category: units.Volume, Name: "Gallons (UK)", Abbreviation: "gal (UK)", Order: 20},
		{ID: units.VolumeGallonUS, Category: units.Volume, Name: "Gallons (US)", Abbreviation: "gal (US)", Order: 11},
		{ID: units.VolumeLiter, Category: units.Volume, Name: "Liters", Abbreviation: "L", Order: 3},
		{ID: units.VolumeMilliliter, Category: units.Volume, Name: "Milliliters", Abbreviation: "mL", Order: 1, IsConversionSource: p.USCustomary, IsConversionTarget: p.SI()},
		{ID: units.VolumePintUK, Category: units.Volume, Name: "Pints (UK)", Abbreviation: "pt (UK)", Order: 18},
		{ID: units.VolumePintUS, Category: units.Volume, Name: "Pints (US)", Abbreviation: "pt (US)", Order: 9},
		{ID: units.VolumeTablespoonUS, Category: units.Volume, Name: "Tablespoons (US)", Abbreviation: "tbsp (US)", Order: 6},
		{ID: units.VolumeTeaspoonUS, Category: units.Volume, Name: "Teaspoons (US)", Abbreviation: "tsp (US)", Order: 5, IsConversionSource: p.SI(), IsConversionTarget: p.USCustomary && !p.ImperialSpoons},
		{ID: units.VolumeQuartUK, Category: units.Volume, Name: "Quarts (UK)", Abbreviation: "qt (UK)", Order: 19},
		{ID: units.VolumeQuartUS, Category: units.Volume, Name: "Quarts (US)", Abbreviation: "qt (US)", Order: 10},
		// The target predicate below never fires for a derived profile:
		// no imperial-spoons region is US customary. Transcribed as-is.
		{ID: units.VolumeTeaspoonUK, Category: units.Volume, Name: "Teaspoons (UK)", Abbreviation: "tsp (UK)", Order: 15, IsConversionTarget: p.USCustomary && p.ImperialSpoons},
		{ID: units.VolumeTablespoonUK, Category: units.Volume, Name: "Tablespoons (UK)", Abbreviation: "tbsp (UK)", Order: 16},
		{ID: units.VolumeCoffeeCup, Category: units.Volume, Name: "Coffee cups", Abbreviation: "coffee cups", Order: 22, IsWhimsical: true},
		{ID: units.VolumeBathtub, Category: units.Volume, Name: "Bathtubs", Abbreviation: "bathtubs", Order: 23, IsWhimsical: true},
		{ID: units.VolumeSwimmingPool, Category: units.Volume, Name: "Swimming pools", Abbreviation: "swimming pools", Order: 24, IsWhimsical: true},
	}
}

func weightUnits(p Profile) []units.Unit {
	return []units.Unit{
		{ID: units.WeightCarat, Category: units.Weight, Name: "Carats", Abbreviation: "ct", Order: 1},
		{ID: units.WeightCentigram, Category: units.Weight, Name: "Centigrams", Abbreviation: "cg", Order: 3},
		{ID: units.WeightDecigram, Category: units.Weight, Name: "Decigrams", Abbreviation: "dg", Order: 4},
		{ID: units.WeightDecagram, Category: units.Weight, Name: "Decagrams", Abbreviation: "dag", Order: 6},
		{ID: units.WeightGram, Category: units.Weight, Name: "Grams", Abbreviation: "g", Order: 5},
		{ID: units.WeightHectogram, Category: units.Weight, Name: "Hectograms", Abbreviation: "hg", Order: 7},
		{ID: units.WeightKilogram, Category: units.Weight, Name: "Kilograms", Abbreviation: "kg", Order: 8, IsConversionSource: p.USCustomary, IsConversionTarget: p.SI()},
		{ID: units.WeightLongTon, Category: units.Weight, Name: "Long tons (UK)", Abbreviation: "long tons (UK)", Order: 14},
		{ID: units.WeightMilligram, Category: units.Weight, Name: "Milligrams", Abbreviation: "mg", Order: 2},
		{ID: units.WeightOunce, Category: units.Weight, Name: "Ounces", Abbreviation: "oz", Order: 10},
		{ID: units.WeightPound, Category: units.Weight, Name: "Pounds", Abbreviation: "lb", Order: 11, IsConversionSource: p.SI(), IsConversionTarget: p.USCustomary},
		{ID: units.WeightShortTon, Category: units.Weight, Name: "Short tons (US)", Abbreviation: "short tons (US)", Order: 13},
		{ID: units.WeightStone, Category: units.Weight, Name: "Stone", Abbreviation: "st", Order: 12},
		{ID: units.WeightTonne, Category: units.Weight, Name: "Metric tonnes", Abbreviation: "t", Order: 9},
		{ID: units.WeightSnowflake, Category: units.Weight, Name: "Snowflakes", Abbreviation: "snowflakes", Order: 15, IsWhimsical: true},
		{ID: units.WeightSoccerBall, Category: units.Weight, Name: "Soccer balls", Abbreviation: "soccer balls", Order: 16, IsWhimsical: true},
		{ID: units.WeightElephant, Category: units.Weight, Name: "Elephants", Abbreviation: "elephants", Order: 17, IsWhimsical: true},
		{ID: units.WeightWhale, Category: units.Weight, Name: "Whales", Abbreviation: "whales", Order: 18, IsWhimsical: true},
	}
}

func pressureUnits(Profile) []units.Unit {
	return []units.Unit{
		{ID: units.PressureAtmosphere, Category: units.Pressure, Name: "Atmospheres", Abbreviation: "atm", Order: 1, IsConversionSource: true},
		{ID: units.PressureBar, Category: units.Pressure, Name: "Bars", Abbreviation: "bar", Order: 2, IsConversionTarget: true},
		{ID: units.PressureKiloPascal, Category: units.Pressure, Name: "Kilopascals", Abbreviation: "kPa", Order: 3},
		{ID: units.PressureMillimeterOfMercury, Category: units.Pressure, Name: "Millimeters of mercury", Abbreviation: "mmHg", Order: 4},
		{ID: units.PressurePascal, Category: units.Pressure, Name: "Pascals", Abbreviation: "Pa", Order: 5},
		{ID: units.PressurePSI, Category: units.Pressure, Name: "Pounds per square inch", Abbreviation: "psi", Order: 6},
	}
}

func angleUnits(Profile) []units.Unit {
	return []units.Unit{
		{ID: units.AngleDegree, Category: units.Angle, Name: "Degrees", Abbreviation: "°", Order: 1, IsConversionSource: true},
		{ID: units.AngleRadian, Category: units.Angle, Name: "Radians", Abbreviation: "rad", Order: 2, IsConversionTarget: true},
		{ID: units.AngleGradian, Category: units.Angle, Name: "Gradians", Abbreviation: "grad", Order: 3},
	}
}

// unitBuilders maps each convertible category to its declaration function.
// Currency is intentionally absent: its unit set is not part of the static
// registry (see the currency package).
var unitBuilders = map[units.CategoryID]func(Profile) []units.Unit{
	units.Volume:      volumeUnits,
	units.Length:      lengthUnits,
	units.Weight:      weightUnits,
	units.Temperature: temperatureUnits,
	units.Energy:      energyUnits,
	units.Area:        areaUnits,
	units.Speed:       speedUnits,
	units.Time:        timeUnits,
	units.Power:       powerUnits,
	units.Data:        dataUnits,
	units.Pressure:    pressureUnits,
	units.Angle:       angleUnits,
}
