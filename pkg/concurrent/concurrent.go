// Package concurrent runs independent computations in parallel.
package concurrent

import (
	"context"

	"github.com/zeusync/dimension/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// ForEach runs action for each element of the iterator in its own goroutine,
// at most limit at a time (limit <= 0 means no bound). It waits for all
// goroutines and returns the first error; the context handed to action is
// cancelled as soon as one action fails.
func ForEach[T any](ctx context.Context, i *sequence.Iterator[T], limit int, action func(context.Context, T) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for value := range i.Seq() {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			return action(groupCtx, value)
		})
	}

	return group.Wait()
}
