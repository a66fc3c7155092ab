// Package solver is the entry point for running nondeterministic
// computations. Solve explores every branch of a computation breadth
// first and produces the values returned by branches that complete
// without pruning.
package solver

import (
	"context"
	"fmt"
	"iter"

	internal "github.com/operator-framework/nondet/internal/solver"
	"github.com/operator-framework/nondet/pkg/nondet"
)

type config struct {
	tracer  nondet.Tracer
	workers int
}

// Option configures one call to Solve.
type Option func(c *config) error

// WithTracer installs a Tracer observing every processed path.
func WithTracer(t nondet.Tracer) Option {
	return func(c *config) error {
		if t == nil {
			return fmt.Errorf("tracer must not be nil")
		}
		c.tracer = t
		return nil
	}
}

// WithWorkers replays each breadth-first level concurrently across up to
// n goroutines. The computation must be reentrant and free of shared
// mutable state. Result order is unchanged: outcomes are applied in level
// order regardless of which worker replayed them.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("worker count must be at least 1, got %d", n)
		}
		c.workers = n
		return nil
	}
}

var defaults = []Option{
	func(c *config) error {
		if c.tracer == nil {
			c.tracer = nondet.DefaultTracer{}
		}
		return nil
	},
	func(c *config) error {
		if c.workers == 0 {
			c.workers = 1
		}
		return nil
	},
}

// Solve evaluates every branch of fn and returns the lazy sequence of
// results from branches that completed, in breadth-first order. The
// sequence ends when the search space is exhausted; on an infinite
// branching structure it is infinite and the consumer ends it by breaking
// out. A non-nil error in the sequence is fatal: it is the last element,
// and results yielded before it remain valid.
//
// Each call builds fresh engine state, so calls are independent and a
// sequence may be consumed at most once but requested repeatedly.
func Solve[T any](ctx context.Context, fn nondet.Computation[T], opts ...Option) iter.Seq2[T, error] {
	cfg := &config{}
	for _, opt := range append(opts, defaults...) {
		if err := opt(cfg); err != nil {
			return func(yield func(T, error) bool) {
				var zero T
				yield(zero, err)
			}
		}
	}
	return internal.Solve(ctx, fn, internal.Config{Tracer: cfg.tracer, Workers: cfg.workers})
}

// All runs Solve to exhaustion and collects the results. On error it
// returns the results yielded so far together with the error.
func All[T any](ctx context.Context, fn nondet.Computation[T], opts ...Option) ([]T, error) {
	var results []T
	for v, err := range Solve(ctx, fn, opts...) {
		if err != nil {
			return results, err
		}
		results = append(results, v)
	}
	return results, nil
}
