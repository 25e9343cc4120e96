// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Each runs fn for every item with at most workerCount calls in flight. Calls succeed
// or fail independently of one another; Each returns after every started call has
// returned. Items not yet started when ctx is canceled are skipped and ctx.Err() is
// returned.
func Each[T any](ctx context.Context, workerCount int, items []T, fn func(ctx context.Context, index int, item T)) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}

	var g errgroup.Group
	g.SetLimit(workerCount)
	for i, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fn(ctx, i, item)
			return nil
		})
	}
	_ = g.Wait()

	return ctx.Err()
}

// Map is Each with per-item results kept in input order. Results of skipped items are
// zero values.
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(ctx context.Context, index int, item T) R) ([]R, error) {
	results := make([]R, len(items))
	err := Each(ctx, workerCount, items, func(ctx context.Context, i int, item T) {
		results[i] = fn(ctx, i, item)
	})
	return results, err
}
