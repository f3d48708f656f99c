// Package pixels holds on-screen quantities measured in device pixels. A
// pixel is its own dimension and never converts to a physical length.
package pixels

import "github.com/zeusync/dimension/pkg/quantity"

type (
	Length       = quantity.Quantity[quantity.Pixels]
	Speed        = quantity.Quantity[quantity.PixelsPerSecond]
	Acceleration = quantity.Quantity[quantity.PixelsPerSecondSquared]
	Area         = quantity.Quantity[quantity.SquarePixels]
)

var (
	pixel                 = quantity.NewConversion[quantity.Pixels](1)
	pixelPerSecond        = quantity.NewConversion[quantity.PixelsPerSecond](1)
	pixelPerSecondSquared = quantity.NewConversion[quantity.PixelsPerSecondSquared](1)
	squarePixel           = quantity.SquaredConversion(pixel)
)

func Pixels(v float64) Length   { return pixel.Into(v) }
func InPixels(l Length) float64 { return pixel.OutOf(l) }

func PixelsPerSecond(v float64) Speed   { return pixelPerSecond.Into(v) }
func InPixelsPerSecond(s Speed) float64 { return pixelPerSecond.OutOf(s) }

func PixelsPerSecondSquared(v float64) Acceleration   { return pixelPerSecondSquared.Into(v) }
func InPixelsPerSecondSquared(a Acceleration) float64 { return pixelPerSecondSquared.OutOf(a) }

func SquarePixels(v float64) Area   { return squarePixel.Into(v) }
func InSquarePixels(a Area) float64 { return squarePixel.OutOf(a) }
