// Package area converts between units of area; the canonical unit is the
// square meter.
package area

import "github.com/zeusync/dimension/pkg/quantity"

type Area = quantity.Quantity[quantity.SquareMeters]

var (
	squareMeter      = quantity.NewConversion[quantity.SquareMeters](1)
	squareMillimeter = quantity.SquaredConversion(quantity.NewConversion[quantity.Meters](1e-3))
	squareCentimeter = quantity.SquaredConversion(quantity.NewConversion[quantity.Meters](1e-2))
	squareKilometer  = quantity.SquaredConversion(quantity.NewConversion[quantity.Meters](1e3))
	hectare          = quantity.NewConversion[quantity.SquareMeters](1e4)
	squareInch       = quantity.SquaredConversion(quantity.NewConversion[quantity.Meters](0.0254))
	squareFoot       = quantity.SquaredConversion(quantity.NewConversion[quantity.Meters](0.3048))
	squareYard       = quantity.SquaredConversion(quantity.NewConversion[quantity.Meters](0.9144))
	acre             = quantity.NewConversion[quantity.SquareMeters](4046.8564224)
	squareMile       = quantity.SquaredConversion(quantity.NewConversion[quantity.Meters](1609.344))
)

func SquareMeters(v float64) Area   { return squareMeter.Into(v) }
func InSquareMeters(a Area) float64 { return squareMeter.OutOf(a) }

func SquareMillimeters(v float64) Area   { return squareMillimeter.Into(v) }
func InSquareMillimeters(a Area) float64 { return squareMillimeter.OutOf(a) }

func SquareCentimeters(v float64) Area   { return squareCentimeter.Into(v) }
func InSquareCentimeters(a Area) float64 { return squareCentimeter.OutOf(a) }

func SquareKilometers(v float64) Area   { return squareKilometer.Into(v) }
func InSquareKilometers(a Area) float64 { return squareKilometer.OutOf(a) }

func Hectares(v float64) Area   { return hectare.Into(v) }
func InHectares(a Area) float64 { return hectare.OutOf(a) }

func SquareInches(v float64) Area   { return squareInch.Into(v) }
func InSquareInches(a Area) float64 { return squareInch.OutOf(a) }

func SquareFeet(v float64) Area   { return squareFoot.Into(v) }
func InSquareFeet(a Area) float64 { return squareFoot.OutOf(a) }

func SquareYards(v float64) Area   { return squareYard.Into(v) }
func InSquareYards(a Area) float64 { return squareYard.OutOf(a) }

// Acres are international acres, 1/640 of a square mile.
func Acres(v float64) Area   { return acre.Into(v) }
func InAcres(a Area) float64 { return acre.OutOf(a) }

func SquareMiles(v float64) Area   { return squareMile.Into(v) }
func InSquareMiles(a Area) float64 { return squareMile.OutOf(a) }
