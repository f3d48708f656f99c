// Package volume converts between units of volume; the canonical unit is the
// cubic meter.
package volume

import "github.com/zeusync/dimension/pkg/quantity"

type Volume = quantity.Quantity[quantity.CubicMeters]

const (
	usLiquidGallonInCubicMeters = 0.003785411784
	usDryGallonInCubicMeters    = 0.00440488377086
	imperialGallonInCubicMeters = 0.00454609
)

var (
	cubicMeter      = quantity.NewConversion[quantity.CubicMeters](1)
	cubicMillimeter = quantity.CubedConversion(quantity.NewConversion[quantity.Meters](1e-3))
	cubicCentimeter = quantity.CubedConversion(quantity.NewConversion[quantity.Meters](1e-2))
	liter           = quantity.NewConversion[quantity.CubicMeters](1e-3)
	milliliter      = quantity.NewConversion[quantity.CubicMeters](1e-6)
	cubicInch       = quantity.CubedConversion(quantity.NewConversion[quantity.Meters](0.0254))
	cubicFoot       = quantity.CubedConversion(quantity.NewConversion[quantity.Meters](0.3048))
	cubicYard       = quantity.CubedConversion(quantity.NewConversion[quantity.Meters](0.9144))

	usLiquidGallon     = quantity.NewConversion[quantity.CubicMeters](usLiquidGallonInCubicMeters)
	usDryGallon        = quantity.NewConversion[quantity.CubicMeters](usDryGallonInCubicMeters)
	imperialGallon     = quantity.NewConversion[quantity.CubicMeters](imperialGallonInCubicMeters)
	usLiquidQuart      = quantity.NewConversion[quantity.CubicMeters](usLiquidGallonInCubicMeters / 4)
	usDryQuart         = quantity.NewConversion[quantity.CubicMeters](usDryGallonInCubicMeters / 4)
	imperialQuart      = quantity.NewConversion[quantity.CubicMeters](imperialGallonInCubicMeters / 4)
	usLiquidPint       = quantity.NewConversion[quantity.CubicMeters](usLiquidGallonInCubicMeters / 8)
	usDryPint          = quantity.NewConversion[quantity.CubicMeters](usDryGallonInCubicMeters / 8)
	imperialPint       = quantity.NewConversion[quantity.CubicMeters](imperialGallonInCubicMeters / 8)
	usFluidOunce       = quantity.NewConversion[quantity.CubicMeters](usLiquidGallonInCubicMeters / 128)
	imperialFluidOunce = quantity.NewConversion[quantity.CubicMeters](imperialGallonInCubicMeters / 160)
)

func CubicMeters(v float64) Volume   { return cubicMeter.Into(v) }
func InCubicMeters(v Volume) float64 { return cubicMeter.OutOf(v) }

func CubicMillimeters(v float64) Volume   { return cubicMillimeter.Into(v) }
func InCubicMillimeters(v Volume) float64 { return cubicMillimeter.OutOf(v) }

func CubicCentimeters(v float64) Volume   { return cubicCentimeter.Into(v) }
func InCubicCentimeters(v Volume) float64 { return cubicCentimeter.OutOf(v) }

func Liters(v float64) Volume   { return liter.Into(v) }
func InLiters(v Volume) float64 { return liter.OutOf(v) }

func Milliliters(v float64) Volume   { return milliliter.Into(v) }
func InMilliliters(v Volume) float64 { return milliliter.OutOf(v) }

func CubicInches(v float64) Volume   { return cubicInch.Into(v) }
func InCubicInches(v Volume) float64 { return cubicInch.OutOf(v) }

func CubicFeet(v float64) Volume   { return cubicFoot.Into(v) }
func InCubicFeet(v Volume) float64 { return cubicFoot.OutOf(v) }

func CubicYards(v float64) Volume   { return cubicYard.Into(v) }
func InCubicYards(v Volume) float64 { return cubicYard.OutOf(v) }

func UsLiquidGallons(v float64) Volume   { return usLiquidGallon.Into(v) }
func InUsLiquidGallons(v Volume) float64 { return usLiquidGallon.OutOf(v) }

func UsDryGallons(v float64) Volume   { return usDryGallon.Into(v) }
func InUsDryGallons(v Volume) float64 { return usDryGallon.OutOf(v) }

func ImperialGallons(v float64) Volume   { return imperialGallon.Into(v) }
func InImperialGallons(v Volume) float64 { return imperialGallon.OutOf(v) }

func UsLiquidQuarts(v float64) Volume   { return usLiquidQuart.Into(v) }
func InUsLiquidQuarts(v Volume) float64 { return usLiquidQuart.OutOf(v) }

func UsDryQuarts(v float64) Volume   { return usDryQuart.Into(v) }
func InUsDryQuarts(v Volume) float64 { return usDryQuart.OutOf(v) }

func ImperialQuarts(v float64) Volume   { return imperialQuart.Into(v) }
func InImperialQuarts(v Volume) float64 { return imperialQuart.OutOf(v) }

func UsLiquidPints(v float64) Volume   { return usLiquidPint.Into(v) }
func InUsLiquidPints(v Volume) float64 { return usLiquidPint.OutOf(v) }

func UsDryPints(v float64) Volume   { return usDryPint.Into(v) }
func InUsDryPints(v Volume) float64 { return usDryPint.OutOf(v) }

func ImperialPints(v float64) Volume   { return imperialPint.Into(v) }
func InImperialPints(v Volume) float64 { return imperialPint.OutOf(v) }

func UsFluidOunces(v float64) Volume   { return usFluidOunce.Into(v) }
func InUsFluidOunces(v Volume) float64 { return usFluidOunce.OutOf(v) }

func ImperialFluidOunces(v float64) Volume   { return imperialFluidOunce.Into(v) }
func InImperialFluidOunces(v Volume) float64 { return imperialFluidOunce.OutOf(v) }
