package geom2d_test

import (
	fuzz "github.com/google/gofuzz"

	"github.com/zeusync/dimension/internal/testutil"
	"github.com/zeusync/dimension/pkg/geom2d"
	"github.com/zeusync/dimension/pkg/quantity"
	"github.com/zeusync/dimension/pkg/units/angle"
	"github.com/zeusync/dimension/pkg/units/length"
)

type (
	world struct{}
	body  struct{}
	wheel struct{}
)

type (
	point  = geom2d.Point[quantity.Meters, world]
	vector = geom2d.Vector[quantity.Meters, world]
)

func pt(x, y float64) point {
	return geom2d.PointXY[quantity.Meters, world](length.Meters(x), length.Meters(y))
}

func vec(x, y float64) vector {
	return geom2d.VectorFromComponents[quantity.Meters, world](length.Meters(x), length.Meters(y))
}

func dir(x, y float64) geom2d.Direction[world] {
	d, ok := geom2d.DirectionFromComponents[world](x, y)
	if !ok {
		panic("zero direction")
	}
	return d
}

func randomPoint[C any](f *fuzz.Fuzzer) geom2d.Point[quantity.Meters, C] {
	return geom2d.PointXY[quantity.Meters, C](length.Meters(testutil.Float(f)), length.Meters(testutil.Float(f)))
}

// randomFrame draws a frame with either handedness.
func randomFrame[G, L any](f *fuzz.Fuzzer) geom2d.Frame[quantity.Meters, G, L] {
	frame := geom2d.WithXDirection[quantity.Meters, G, L](
		randomPoint[G](f),
		geom2d.DirectionFromAngle[G](angle.Radians(testutil.Float(f))),
	)
	if testutil.Float(f) < 0 {
		return frame.ReverseY()
	}
	return frame
}
