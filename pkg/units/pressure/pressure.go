// Package pressure converts between units of force per area.
package pressure

import "github.com/zeusync/dimension/pkg/quantity"

type Pressure = quantity.Quantity[quantity.Pascals]

var (
	pascal              = quantity.NewConversion[quantity.Pascals](1)
	kilopascal          = quantity.NewConversion[quantity.Pascals](1e3)
	megapascal          = quantity.NewConversion[quantity.Pascals](1e6)
	bar                 = quantity.NewConversion[quantity.Pascals](1e5)
	poundPerSquareInch  = quantity.NewConversion[quantity.Pascals](6894.757293168361)
	atmosphere          = quantity.NewConversion[quantity.Pascals](101325)
	millimeterOfMercury = quantity.NewConversion[quantity.Pascals](133.322387415)
)

func Pascals(v float64) Pressure   { return pascal.Into(v) }
func InPascals(p Pressure) float64 { return pascal.OutOf(p) }

func Kilopascals(v float64) Pressure   { return kilopascal.Into(v) }
func InKilopascals(p Pressure) float64 { return kilopascal.OutOf(p) }

func Megapascals(v float64) Pressure   { return megapascal.Into(v) }
func InMegapascals(p Pressure) float64 { return megapascal.OutOf(p) }

func Bars(v float64) Pressure   { return bar.Into(v) }
func InBars(p Pressure) float64 { return bar.OutOf(p) }

func PoundsPerSquareInch(v float64) Pressure   { return poundPerSquareInch.Into(v) }
func InPoundsPerSquareInch(p Pressure) float64 { return poundPerSquareInch.OutOf(p) }

// Atmospheres are standard atmospheres.
func Atmospheres(v float64) Pressure   { return atmosphere.Into(v) }
func InAtmospheres(p Pressure) float64 { return atmosphere.OutOf(p) }

func MillimetersOfMercury(v float64) Pressure   { return millimeterOfMercury.Into(v) }
func InMillimetersOfMercury(p Pressure) float64 { return millimeterOfMercury.OutOf(p) }
