// This file enumerates every unit identity in the registry. The single
// iota block is what makes unit ids globally unique across categories —
// do not split it or renumber inside it.

package units

// Unit identities, grouped by category for readability. The values are a
// flat, stable sequence; catalog and factors reference these constants and
// the ratiograph output is keyed by them.
const (
	AreaAcre UnitID = iota + 1
	AreaHectare
	AreaSquareCentimeter
	AreaSquareFoot
	AreaSquareInch
	AreaSquareKilometer
	AreaSquareMeter
	AreaSquareMile
	AreaSquareMillimeter
	AreaSquareYard
	AreaHand
	AreaPaper
	AreaSoccerField
	AreaCastle
	AreaPyeong

	DataBit
	DataByte
	DataKilobit
	DataKilobyte
	DataKibibits
	DataKibibytes
	DataMegabit
	DataMegabyte
	DataMebibits
	DataMebibytes
	DataGigabit
	DataGigabyte
	DataGibibits
	DataGibibytes
	DataTerabit
	DataTerabyte
	DataTebibits
	DataTebibytes
	DataPetabit
	DataPetabyte
	DataPebibits
	DataPebibytes
	DataExabits
	DataExabytes
	DataExbibits
	DataExbibytes
	DataZetabits
	DataZetabytes
	DataZebibits
	DataZebibytes
	DataYottabit
	DataYottabyte
	DataYobibits
	DataYobibytes
	DataFloppyDisk
	DataCD
	DataDVD

	EnergyBritishThermalUnit
	EnergyCalorie
	EnergyElectronVolt
	EnergyFootPound
	EnergyJoule
	EnergyKilocalorie
	EnergyKilojoule
	EnergyBattery
	EnergyBanana
	EnergySliceOfCake

	LengthCentimeter
	LengthFoot
	LengthInch
	LengthKilometer
	LengthMeter
	LengthMicron
	LengthMile
	LengthMillimeter
	LengthNanometer
	LengthNauticalMile
	LengthYard
	LengthPaperclip
	LengthHand
	LengthJumboJet

	PowerBritishThermalUnitPerMinute
	PowerFootPoundPerMinute
	PowerHorsepower
	PowerKilowatt
	PowerWatt
	PowerLightBulb
	PowerHorse
	PowerTrainEngine

	TemperatureDegreesCelsius
	TemperatureDegreesFahrenheit
	TemperatureKelvin

	TimeDay
	TimeHour
	TimeMicrosecond
	TimeMillisecond
	TimeMinute
	TimeSecond
	TimeWeek
	TimeYear

	SpeedCentimetersPerSecond
	SpeedFeetPerSecond
	SpeedKilometersPerHour
	SpeedKnot
	SpeedMach
	SpeedMetersPerSecond
	SpeedMilesPerHour
	SpeedTurtle
	SpeedHorse
	SpeedJet

	VolumeCubicCentimeter
	VolumeCubicFoot
	VolumeCubicInch
	VolumeCubicMeter
	VolumeCubicYard
	VolumeCupUS
	VolumeFluidOunceUK
	VolumeFluidOunceUS
	VolumeGallonUK
	VolumeGallonUS
	VolumeLiter
	VolumeMilliliter
	VolumePintUK
	VolumePintUS
	VolumeQuartUK
	VolumeQuartUS
	VolumeTeaspoonUS
	VolumeTablespoonUS
	VolumeTeaspoonUK
	VolumeTablespoonUK
	VolumeCoffeeCup
	VolumeBathtub
	VolumeSwimmingPool

	WeightCarat
	WeightCentigram
	WeightDecigram
	WeightDecagram
	WeightGram
	WeightHectogram
	WeightKilogram
	WeightLongTon
	WeightMilligram
	WeightOunce
	WeightPound
	WeightShortTon
	WeightStone
	WeightTonne
	WeightSnowflake
	WeightSoccerBall
	WeightElephant
	WeightWhale

	PressureAtmosphere
	PressureBar
	PressureKiloPascal
	PressureMillimeterOfMercury
	PressurePascal
	PressurePSI

	AngleDegree
	AngleRadian
	AngleGradian
)
