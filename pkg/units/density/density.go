// Package density converts between units of mass per volume.
package density

import "github.com/zeusync/dimension/pkg/quantity"

type Density = quantity.Quantity[quantity.KilogramsPerCubicMeter]

var (
	kilogramPerCubicMeter  = quantity.NewConversion[quantity.KilogramsPerCubicMeter](1)
	gramPerCubicCentimeter = quantity.RateConversion(quantity.NewConversion[quantity.Kilograms](1e-3), quantity.CubedConversion(quantity.NewConversion[quantity.Meters](1e-2)))
	poundPerCubicInch      = quantity.RateConversion(quantity.NewConversion[quantity.Kilograms](0.45359237), quantity.CubedConversion(quantity.NewConversion[quantity.Meters](0.0254)))
	poundPerCubicFoot      = quantity.RateConversion(quantity.NewConversion[quantity.Kilograms](0.45359237), quantity.CubedConversion(quantity.NewConversion[quantity.Meters](0.3048)))
)

func KilogramsPerCubicMeter(v float64) Density   { return kilogramPerCubicMeter.Into(v) }
func InKilogramsPerCubicMeter(d Density) float64 { return kilogramPerCubicMeter.OutOf(d) }

func GramsPerCubicCentimeter(v float64) Density   { return gramPerCubicCentimeter.Into(v) }
func InGramsPerCubicCentimeter(d Density) float64 { return gramPerCubicCentimeter.OutOf(d) }

func PoundsPerCubicInch(v float64) Density   { return poundPerCubicInch.Into(v) }
func InPoundsPerCubicInch(d Density) float64 { return poundPerCubicInch.OutOf(d) }

func PoundsPerCubicFoot(v float64) Density   { return poundPerCubicFoot.Into(v) }
func InPoundsPerCubicFoot(d Density) float64 { return poundPerCubicFoot.OutOf(d) }
