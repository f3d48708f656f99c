package interval_test

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/interval"
	"github.com/zeusync/dimension/pkg/quantity"
)

type seconds = quantity.Quantity[quantity.Seconds]

func secs(v float64) seconds { return quantity.FromRaw[quantity.Seconds](v) }

func unitless(v float64) quantity.Quantity[quantity.Unitless] { return quantity.Float(v) }

// randomSpan draws an interval with bounds in [-10, 10) and a parameter that
// picks a member of it.
func randomSpan[U quantity.Unit](f *fuzz.Fuzzer) (interval.Interval[U], quantity.Quantity[U]) {
	i := interval.From(quantity.FromRaw[U](testutil.Float(f)), quantity.FromRaw[U](testutil.Float(f)))
	return i, i.Interpolate(testutil.Unit(f))
}

func within[U quantity.Unit](name string, i interval.Interval[U], q quantity.Quantity[U]) error {
	return testutil.Expect(i.Contains(q), "%s: %v not in %v", name, q, i)
}

func TestPropagationContainsEveryResult(t *testing.T) {
	testutil.Check(t, testutil.DefaultTrials, 10, func(f *fuzz.Fuzzer) error {
		i, x := randomSpan[quantity.Meters](f)
		j, y := randomSpan[quantity.Meters](f)
		k, z := randomSpan[quantity.Seconds](f)
		u, w := randomSpan[quantity.Unitless](f)
		s := testutil.Float(f)

		checks := []error{
			within("plus", i.PlusInterval(j), x.Plus(y)),
			within("plus scalar", i.Plus(y), x.Plus(y)),
			within("minus", i.MinusInterval(j), x.Minus(y)),
			within("minus scalar", i.Minus(y), x.Minus(y)),
			within("difference", i.Difference(y), y.Minus(x)),
			within("negate", i.Negate(), x.Negate()),
			within("multiply", i.MultiplyBy(s), x.Multiply(s)),
			within("half", i.Half(), x.Half()),
			within("twice", i.Twice(), x.Twice()),
			within("abs", i.Abs(), x.Abs()),
			within("times", interval.Times(i, z), quantity.Times(x, z)),
			within("product", interval.Product(z, i), quantity.Times(z, x)),
			within("times interval", interval.TimesInterval(i, k), quantity.Times(x, z)),
			within("times unitless", interval.TimesUnitless(i, w), quantity.TimesUnitless(w, x)),
			within("times unitless interval", interval.TimesUnitlessInterval(i, u), quantity.TimesUnitless(w, x)),
			within("square", interval.Square(i), quantity.Square(x)),
			within("square unitless", interval.SquareUnitless(u), quantity.SquareUnitless(w)),
			within("cube", interval.Cube(i), quantity.Cube(x)),
			within("cube unitless", interval.CubeUnitless(u), quantity.CubeUnitless(w)),
		}
		if s != 0 {
			checks = append(checks, within("divide", i.DivideBy(s), x.Divide(s)))
		}
		for _, err := range checks {
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func TestIntersectsAgreesWithIntersection(t *testing.T) {
	testutil.Check(t, testutil.DefaultTrials, 10, func(f *fuzz.Fuzzer) error {
		i, _ := randomSpan[quantity.Meters](f)
		j, _ := randomSpan[quantity.Meters](f)
		overlap, ok := i.Intersection(j)
		if err := testutil.Expect(ok == i.Intersects(j), "intersects=%v but intersection ok=%v for %v and %v", i.Intersects(j), ok, i, j); err != nil {
			return err
		}
		if !ok {
			return nil
		}
		return testutil.Expect(i.ContainsInterval(overlap) && j.ContainsInterval(overlap),
			"%v is not inside both %v and %v", overlap, i, j)
	})
}

func TestAbsStraddlingZero(t *testing.T) {
	assert.True(t, span(-3, 2).Abs().Equal(span(0, 3)))
	assert.True(t, span(-3, -1).Abs().Equal(span(1, 3)))
	assert.True(t, span(1, 3).Abs().Equal(span(1, 3)))
	assert.True(t, interval.Square(span(-3, 2)).Equal(interval.From(quantity.Square(meters(0)), quantity.Square(meters(3)))))
	assert.True(t, interval.Cube(span(-2, 1)).Equal(interval.From(quantity.Cube(meters(-2)), quantity.Cube(meters(1)))))
}

func TestScalarPropagation(t *testing.T) {
	i := span(1, 3)
	assert.True(t, i.MultiplyBy(-2).Equal(span(-6, -2)))
	assert.True(t, i.DivideBy(-1).Equal(span(-3, -1)))
	assert.True(t, i.Difference(meters(10)).Equal(span(7, 9)))
	assert.True(t, i.MinusInterval(span(0, 1)).Equal(span(0, 3)))

	area := interval.TimesInterval(span(-1, 2), span(3, 4))
	assert.InDelta(t, -4, area.Min().Raw(), 1e-12)
	assert.InDelta(t, 8, area.Max().Raw(), 1e-12)

	scaled := interval.TimesUnitlessInterval(i, interval.From(unitless(-1), unitless(2)))
	assert.True(t, scaled.Equal(span(-3, 6)))
	assert.True(t, interval.TimesUnitless(i, unitless(0.5)).Equal(span(0.5, 1.5)))
	assert.Equal(t, "[1 m·s, 3 m·s]", interval.Times(i, secs(1)).String())
}

func ExampleTimesInterval() {
	width := interval.From(meters(2), meters(3))
	height := interval.From(meters(4), meters(5))
	fmt.Println(interval.TimesInterval(width, height))
	// Output: [8 m², 15 m²]
}
