// Package length converts between named units of length and the canonical
// unit, the meter.
//
// Every unit has a builder and an accessor:
//
//	l := length.Feet(3)
//	length.InYards(l) // 1
//
// Conversions are pure scale factors, so for every unit and finite v,
// InUnit(Unit(v)) equals v up to floating point rounding.
package length

import (
	"math"

	"github.com/zeusync/dimension/pkg/quantity"
)

// Length is a quantity stored in meters.
type Length = quantity.Quantity[quantity.Meters]

var (
	meter            = quantity.NewConversion[quantity.Meters](1)
	nanometer        = quantity.NewConversion[quantity.Meters](1e-9)
	micrometer       = quantity.NewConversion[quantity.Meters](1e-6)
	millimeter       = quantity.NewConversion[quantity.Meters](1e-3)
	centimeter       = quantity.NewConversion[quantity.Meters](1e-2)
	kilometer        = quantity.NewConversion[quantity.Meters](1e3)
	angstrom         = quantity.NewConversion[quantity.Meters](1e-10)
	inch             = quantity.NewConversion[quantity.Meters](0.0254)
	foot             = quantity.NewConversion[quantity.Meters](0.3048)
	yard             = quantity.NewConversion[quantity.Meters](0.9144)
	mile             = quantity.NewConversion[quantity.Meters](1609.344)
	nauticalMile     = quantity.NewConversion[quantity.Meters](1852)
	cssPixel         = quantity.NewConversion[quantity.Meters](0.0254 / 96)
	point            = quantity.NewConversion[quantity.Meters](0.0254 / 72)
	pica             = quantity.NewConversion[quantity.Meters](0.0254 / 6)
	astronomicalUnit = quantity.NewConversion[quantity.Meters](149597870700)
	parsec           = quantity.NewConversion[quantity.Meters](149597870700 * 648000 / math.Pi)
	lightYear        = quantity.NewConversion[quantity.Meters](9460730472580800)
)

func Meters(v float64) Length   { return meter.Into(v) }
func InMeters(l Length) float64 { return meter.OutOf(l) }

func Nanometers(v float64) Length   { return nanometer.Into(v) }
func InNanometers(l Length) float64 { return nanometer.OutOf(l) }

func Micrometers(v float64) Length   { return micrometer.Into(v) }
func InMicrometers(l Length) float64 { return micrometer.OutOf(l) }

func Millimeters(v float64) Length   { return millimeter.Into(v) }
func InMillimeters(l Length) float64 { return millimeter.OutOf(l) }

func Centimeters(v float64) Length   { return centimeter.Into(v) }
func InCentimeters(l Length) float64 { return centimeter.OutOf(l) }

func Kilometers(v float64) Length   { return kilometer.Into(v) }
func InKilometers(l Length) float64 { return kilometer.OutOf(l) }

func Angstroms(v float64) Length   { return angstrom.Into(v) }
func InAngstroms(l Length) float64 { return angstrom.OutOf(l) }

func Inches(v float64) Length   { return inch.Into(v) }
func InInches(l Length) float64 { return inch.OutOf(l) }

func Feet(v float64) Length   { return foot.Into(v) }
func InFeet(l Length) float64 { return foot.OutOf(l) }

func Yards(v float64) Length   { return yard.Into(v) }
func InYards(l Length) float64 { return yard.OutOf(l) }

// Miles are international statute miles.
func Miles(v float64) Length   { return mile.Into(v) }
func InMiles(l Length) float64 { return mile.OutOf(l) }

func NauticalMiles(v float64) Length   { return nauticalMile.Into(v) }
func InNauticalMiles(l Length) float64 { return nauticalMile.OutOf(l) }

// CSSPixels are reference pixels of 1/96 inch, unrelated to on-screen
// pixels (see package pixels).
func CSSPixels(v float64) Length   { return cssPixel.Into(v) }
func InCSSPixels(l Length) float64 { return cssPixel.OutOf(l) }

// Points are typographic points of 1/72 inch.
func Points(v float64) Length   { return point.Into(v) }
func InPoints(l Length) float64 { return point.OutOf(l) }

func Picas(v float64) Length   { return pica.Into(v) }
func InPicas(l Length) float64 { return pica.OutOf(l) }

func AstronomicalUnits(v float64) Length   { return astronomicalUnit.Into(v) }
func InAstronomicalUnits(l Length) float64 { return astronomicalUnit.OutOf(l) }

func Parsecs(v float64) Length   { return parsec.Into(v) }
func InParsecs(l Length) float64 { return parsec.OutOf(l) }

// LightYears use the Julian year of 365.25 days.
func LightYears(v float64) Length   { return lightYear.Into(v) }
func InLightYears(l Length) float64 { return lightYear.OutOf(l) }
