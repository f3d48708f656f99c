package quantity

import "strings"

// Unit is implemented by the zero-size tag types that parameterize Quantity.
// Tags carry no data; they only exist so that the compiler rejects mixing
// quantities of different dimensions.
type Unit interface {
	Symbol() string
}

// Base tags. Each is the canonical unit of its family.

type Unitless struct{}

func (Unitless) Symbol() string { return "" }

type Meters struct{}

func (Meters) Symbol() string { return "m" }

type Seconds struct{}

func (Seconds) Symbol() string { return "s" }

type Kilograms struct{}

func (Kilograms) Symbol() string { return "kg" }

type Radians struct{}

func (Radians) Symbol() string { return "rad" }

// CelsiusDegrees is the unit of temperature differences. One Celsius degree
// equals one kelvin of difference; absolute temperatures are not quantities.
type CelsiusDegrees struct{}

func (CelsiusDegrees) Symbol() string { return "K" }

type Amperes struct{}

func (Amperes) Symbol() string { return "A" }

type Moles struct{}

func (Moles) Symbol() string { return "mol" }

// Pixels is an on-screen length with no fixed relation to Meters.
type Pixels struct{}

func (Pixels) Symbol() string { return "px" }

// Product is the unit of a product of two quantities.
type Product[A, B Unit] struct{}

func (Product[A, B]) Symbol() string {
	var a A
	var b B
	left, right := a.Symbol(), b.Symbol()
	switch {
	case left == "":
		return right
	case right == "":
		return left
	case left == right:
		return group(left) + "²"
	case left == group(right)+"²":
		return group(right) + "³"
	}
	return group(left) + "·" + group(right)
}

// Rate is the unit of Dependent per Independent, e.g. meters per second.
type Rate[Dependent, Independent Unit] struct{}

func (Rate[Dependent, Independent]) Symbol() string {
	var d Dependent
	var i Independent
	return group(d.Symbol()) + "/" + group(i.Symbol())
}

// Squared is the unit of a quantity multiplied by itself.
type Squared[U Unit] = Product[U, U]

// Cubed is the unit of a quantity raised to the third power.
type Cubed[U Unit] = Product[Product[U, U], U]

// Derived units used across the catalog.
type (
	SquareMeters           = Squared[Meters]
	CubicMeters            = Cubed[Meters]
	MetersPerSecond        = Rate[Meters, Seconds]
	MetersPerSecondSquared = Rate[MetersPerSecond, Seconds]
	RadiansPerSecond       = Rate[Radians, Seconds]
	Newtons                = Product[Kilograms, MetersPerSecondSquared]
	Joules                 = Product[Newtons, Meters]
	Watts                  = Rate[Joules, Seconds]
	Pascals                = Rate[Newtons, SquareMeters]
	Coulombs               = Product[Amperes, Seconds]
	Volts                  = Rate[Watts, Amperes]
	Ohms                   = Rate[Volts, Amperes]
	KilogramsPerCubicMeter = Rate[Kilograms, CubicMeters]
	SquarePixels           = Squared[Pixels]
	PixelsPerSecond        = Rate[Pixels, Seconds]
	PixelsPerSecondSquared = Rate[PixelsPerSecond, Seconds]
)

func group(symbol string) string {
	if strings.ContainsAny(symbol, "/·") {
		return "(" + symbol + ")"
	}
	return symbol
}
