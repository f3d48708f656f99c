// Package substance converts between units of amount of substance.
package substance

import "github.com/zeusync/dimension/pkg/quantity"

type Substance = quantity.Quantity[quantity.Moles]

// Avogadro is the number of entities in one mole.
const Avogadro = 6.02214076e23

var (
	mole      = quantity.NewConversion[quantity.Moles](1)
	millimole = quantity.NewConversion[quantity.Moles](1e-3)
	micromole = quantity.NewConversion[quantity.Moles](1e-6)
	kilomole  = quantity.NewConversion[quantity.Moles](1e3)
)

func Moles(v float64) Substance   { return mole.Into(v) }
func InMoles(n Substance) float64 { return mole.OutOf(n) }

func Millimoles(v float64) Substance   { return millimole.Into(v) }
func InMillimoles(n Substance) float64 { return millimole.OutOf(n) }

func Micromoles(v float64) Substance   { return micromole.Into(v) }
func InMicromoles(n Substance) float64 { return micromole.OutOf(n) }

func Kilomoles(v float64) Substance   { return kilomole.Into(v) }
func InKilomoles(n Substance) float64 { return kilomole.OutOf(n) }

// Entities returns the number of particles in n.
func Entities(n Substance) float64 { return n.Raw() * Avogadro }
