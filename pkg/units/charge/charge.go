// Package charge converts between units of electric charge; the canonical
// unit is the coulomb (A·s).
package charge

import "github.com/zeusync/dimension/pkg/quantity"

type Charge = quantity.Quantity[quantity.Coulombs]

var (
	coulomb         = quantity.NewConversion[quantity.Coulombs](1)
	ampereHour      = quantity.NewConversion[quantity.Coulombs](3600)
	milliampereHour = quantity.NewConversion[quantity.Coulombs](3.6)
)

func Coulombs(v float64) Charge   { return coulomb.Into(v) }
func InCoulombs(q Charge) float64 { return coulomb.OutOf(q) }

func AmpereHours(v float64) Charge   { return ampereHour.Into(v) }
func InAmpereHours(q Charge) float64 { return ampereHour.OutOf(q) }

func MilliampereHours(v float64) Charge   { return milliampereHour.Into(v) }
func InMilliampereHours(q Charge) float64 { return milliampereHour.OutOf(q) }
