// Package acceleration converts between units of speed per time.
package acceleration

import "github.com/zeusync/dimension/pkg/quantity"

type Acceleration = quantity.Quantity[quantity.MetersPerSecondSquared]

// StandardGravity is the conventional acceleration of free fall, in m/s².
const StandardGravity = 9.80665

var (
	meterPerSecondSquared = quantity.NewConversion[quantity.MetersPerSecondSquared](1)
	footPerSecondSquared  = quantity.NewConversion[quantity.MetersPerSecondSquared](0.3048)
	gee                   = quantity.NewConversion[quantity.MetersPerSecondSquared](StandardGravity)
)

func MetersPerSecondSquared(v float64) Acceleration   { return meterPerSecondSquared.Into(v) }
func InMetersPerSecondSquared(a Acceleration) float64 { return meterPerSecondSquared.OutOf(a) }

func FeetPerSecondSquared(v float64) Acceleration   { return footPerSecondSquared.Into(v) }
func InFeetPerSecondSquared(a Acceleration) float64 { return footPerSecondSquared.OutOf(a) }

// Gees are multiples of StandardGravity.
func Gees(v float64) Acceleration   { return gee.Into(v) }
func InGees(a Acceleration) float64 { return gee.OutOf(a) }
