// Package force converts between units of force; the canonical unit is the
// newton (kg·m/s²).
package force

import "github.com/zeusync/dimension/pkg/quantity"

type Force = quantity.Quantity[quantity.Newtons]

var (
	newton        = quantity.NewConversion[quantity.Newtons](1)
	kilonewton    = quantity.NewConversion[quantity.Newtons](1e3)
	meganewton    = quantity.NewConversion[quantity.Newtons](1e6)
	poundForce    = quantity.NewConversion[quantity.Newtons](4.4482216152605)
	kilogramForce = quantity.NewConversion[quantity.Newtons](9.80665)
)

func Newtons(v float64) Force   { return newton.Into(v) }
func InNewtons(f Force) float64 { return newton.OutOf(f) }

func Kilonewtons(v float64) Force   { return kilonewton.Into(v) }
func InKilonewtons(f Force) float64 { return kilonewton.OutOf(f) }

func Meganewtons(v float64) Force   { return meganewton.Into(v) }
func InMeganewtons(f Force) float64 { return meganewton.OutOf(f) }

func PoundsForce(v float64) Force   { return poundForce.Into(v) }
func InPoundsForce(f Force) float64 { return poundForce.OutOf(f) }

func KilogramsForce(v float64) Force   { return kilogramForce.Into(v) }
func InKilogramsForce(f Force) float64 { return kilogramForce.OutOf(f) }
