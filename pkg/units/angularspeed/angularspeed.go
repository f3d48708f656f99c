// Package angularspeed converts between units of angle per time.
package angularspeed

import (
	"math"

	"github.com/zeusync/dimension/pkg/quantity"
)

type AngularSpeed = quantity.Quantity[quantity.RadiansPerSecond]

var (
	radianPerSecond     = quantity.NewConversion[quantity.RadiansPerSecond](1)
	degreePerSecond     = quantity.NewConversion[quantity.RadiansPerSecond](math.Pi / 180)
	turnPerSecond       = quantity.NewConversion[quantity.RadiansPerSecond](2 * math.Pi)
	revolutionPerMinute = quantity.RateConversion(quantity.NewConversion[quantity.Radians](2*math.Pi), quantity.NewConversion[quantity.Seconds](60))
)

func RadiansPerSecond(v float64) AngularSpeed   { return radianPerSecond.Into(v) }
func InRadiansPerSecond(w AngularSpeed) float64 { return radianPerSecond.OutOf(w) }

func DegreesPerSecond(v float64) AngularSpeed   { return degreePerSecond.Into(v) }
func InDegreesPerSecond(w AngularSpeed) float64 { return degreePerSecond.OutOf(w) }

func TurnsPerSecond(v float64) AngularSpeed   { return turnPerSecond.Into(v) }
func InTurnsPerSecond(w AngularSpeed) float64 { return turnPerSecond.OutOf(w) }

func RevolutionsPerMinute(v float64) AngularSpeed   { return revolutionPerMinute.Into(v) }
func InRevolutionsPerMinute(w AngularSpeed) float64 { return revolutionPerMinute.OutOf(w) }
