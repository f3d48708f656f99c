// Package angle converts between units of plane angle and provides the
// trigonometric functions over them. The canonical unit is the radian.
package angle

import (
	"math"

	"github.com/zeusync/dimension/pkg/quantity"
)

type Angle = quantity.Quantity[quantity.Radians]

var (
	radian    = quantity.NewConversion[quantity.Radians](1)
	degree    = quantity.NewConversion[quantity.Radians](math.Pi / 180)
	turn      = quantity.NewConversion[quantity.Radians](2 * math.Pi)
	gradian   = quantity.NewConversion[quantity.Radians](math.Pi / 200)
	arcMinute = quantity.NewConversion[quantity.Radians](math.Pi / 10800)
	arcSecond = quantity.NewConversion[quantity.Radians](math.Pi / 648000)
)

func Radians(v float64) Angle   { return radian.Into(v) }
func InRadians(a Angle) float64 { return radian.OutOf(a) }

func Degrees(v float64) Angle   { return degree.Into(v) }
func InDegrees(a Angle) float64 { return degree.OutOf(a) }

func Turns(v float64) Angle   { return turn.Into(v) }
func InTurns(a Angle) float64 { return turn.OutOf(a) }

func Gradians(v float64) Angle   { return gradian.Into(v) }
func InGradians(a Angle) float64 { return gradian.OutOf(a) }

func ArcMinutes(v float64) Angle   { return arcMinute.Into(v) }
func InArcMinutes(a Angle) float64 { return arcMinute.OutOf(a) }

func ArcSeconds(v float64) Angle   { return arcSecond.Into(v) }
func InArcSeconds(a Angle) float64 { return arcSecond.OutOf(a) }

// Common angles.
var (
	Zero   = Radians(0)
	HalfPi = Radians(math.Pi / 2)
	Pi     = Radians(math.Pi)
	TwoPi  = Radians(2 * math.Pi)
)

// Normalize maps a into (-π, π]: Normalize(Degrees(350)) equals
// Normalize(Degrees(-10)).
func Normalize(a Angle) Angle {
	turns := InTurns(a)
	r := turns - math.Round(turns)
	if r <= -0.5 {
		r += 1
	}
	return Turns(r)
}

func Sin(a Angle) float64 { return math.Sin(a.Raw()) }
func Cos(a Angle) float64 { return math.Cos(a.Raw()) }
func Tan(a Angle) float64 { return math.Tan(a.Raw()) }

func Asin(v float64) Angle { return Radians(math.Asin(v)) }
func Acos(v float64) Angle { return Radians(math.Acos(v)) }
func Atan(v float64) Angle { return Radians(math.Atan(v)) }

// Atan2 returns the angle of the vector (x, y). Both components must share a
// unit, which cancels.
func Atan2[U quantity.Unit](y, x quantity.Quantity[U]) Angle {
	return Radians(math.Atan2(y.Raw(), x.Raw()))
}
