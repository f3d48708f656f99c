// Package testutil holds the property-check harness shared by the numeric
// packages' tests.
package testutil

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/dimension/pkg/concurrent"
	"github.com/zeusync/dimension/pkg/sequence"
)

// DefaultTrials is the number of random cases a property is checked against.
const DefaultTrials = 200

// NewFuzzer returns a deterministic fuzzer whose float64 values are uniform
// in [-bound, bound). Fuzzers are not safe for concurrent use; Check gives
// every trial its own.
func NewFuzzer(seed int64, bound float64) *fuzz.Fuzzer {
	return fuzz.New().
		RandSource(rand.NewSource(seed)).
		NilChance(0).
		Funcs(func(v *float64, c fuzz.Continue) {
			*v = (c.Float64()*2 - 1) * bound
		})
}

// Float draws one float64 from f.
func Float(f *fuzz.Fuzzer) float64 {
	var v float64
	f.Fuzz(&v)
	return v
}

// Unit draws a parameter in [0, 1] from f.
func Unit(f *fuzz.Fuzzer) float64 {
	var v float64
	f.Fuzz(&v)
	return math.Abs(math.Mod(v, 1))
}

// Check evaluates property for trials seeds in parallel and fails t with
// the first violation. Properties report violations as errors so they never
// touch t from a worker goroutine.
func Check(t testing.TB, trials int, bound float64, property func(f *fuzz.Fuzzer) error) {
	t.Helper()
	seeds := sequence.Generate(trials, func(i int) int64 { return int64(i + 1) })
	err := concurrent.ForEach(context.Background(), seeds, runtime.GOMAXPROCS(0),
		func(_ context.Context, seed int64) error {
			if err := property(NewFuzzer(seed, bound)); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			return nil
		})
	require.NoError(t, err)
}

// Expect returns an error built from format when ok is false.
func Expect(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf(format, args...)
}

// Close reports whether a and b agree to a relative tolerance of 1e-9.
func Close(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
