// Package current converts between units of electric current.
package current

import "github.com/zeusync/dimension/pkg/quantity"

type Current = quantity.Quantity[quantity.Amperes]

var (
	ampere      = quantity.NewConversion[quantity.Amperes](1)
	milliampere = quantity.NewConversion[quantity.Amperes](1e-3)
)

func Amperes(v float64) Current   { return ampere.Into(v) }
func InAmperes(i Current) float64 { return ampere.OutOf(i) }

func Milliamperes(v float64) Current   { return milliampere.Into(v) }
func InMilliamperes(i Current) float64 { return milliampere.OutOf(i) }
