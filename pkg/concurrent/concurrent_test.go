package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/dimension/pkg/sequence"
)

func TestForEachVisitsEveryElement(t *testing.T) {
	var sum atomic.Int64
	err := ForEach(context.Background(), sequence.Generate(100, func(i int) int64 { return int64(i) }), 4,
		func(_ context.Context, v int64) error {
			sum.Add(v)
			return nil
		})
	assert.NoError(t, err)
	assert.Equal(t, int64(4950), sum.Load())
}

func TestForEachBoundsParallelism(t *testing.T) {
	var running, peak atomic.Int32
	err := ForEach(context.Background(), sequence.Generate(50, func(i int) int { return i }), 3,
		func(_ context.Context, _ int) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
			return nil
		})
	assert.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestForEachReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(context.Background(), sequence.From([]int{1, 2, 3}), 0,
		func(_ context.Context, v int) error {
			if v == 2 {
				return boom
			}
			return nil
		})
	assert.ErrorIs(t, err, boom)
}

func TestForEachStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := ForEach(ctx, sequence.Generate(10, func(i int) int { return i }), 1,
		func(_ context.Context, _ int) error {
			calls.Add(1)
			return nil
		})
	assert.NoError(t, err)
	assert.Zero(t, calls.Load())
}
