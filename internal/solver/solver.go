// Package solver orchestrates the search: it drains the frontier, replays
// each dequeued path, and turns the outcomes into yielded results, dropped
// branches, or new frontier entries.
package solver

import (
	"context"
	"iter"
	"sync"

	"github.com/operator-framework/nondet/internal/frontier"
	"github.com/operator-framework/nondet/internal/replay"
	"github.com/operator-framework/nondet/pkg/nondet"
)

// Config carries the orchestration knobs resolved by the public package.
type Config struct {
	Tracer  nondet.Tracer
	Workers int
}

// Solve returns the lazy sequence of results produced by exploring every
// branch of fn breadth first. Each call builds fresh engine state, so
// repeated calls are independent. Stopping iteration stops the search;
// cancelling ctx yields ErrIncomplete.
func Solve[T any](ctx context.Context, fn nondet.Computation[T], cfg Config) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		s := &search[T]{
			fn:     fn,
			tracer: cfg.Tracer,
			queue:  frontier.New(),
			guards: map[string]*guardState{},
		}
		s.queue.Push(nondet.Path{})
		if cfg.Workers > 1 {
			s.runParallel(ctx, cfg.Workers, yield)
		} else {
			s.run(ctx, yield)
		}
	}
}

// guardState tracks one IfAny block across the whole search. live counts
// the branches opened inside the guarded block that have not yet pruned;
// when it reaches zero the fallback path is enqueued exactly once.
// Completed branches never decrement the count, so a guarded block with
// any successful branch keeps its fallback suppressed forever.
type guardState struct {
	live   int
	pushed bool
}

type search[T any] struct {
	fn     nondet.Computation[T]
	tracer nondet.Tracer
	queue  *frontier.Queue
	guards map[string]*guardState
}

// run is the sequential loop: one dequeue, one replay, outcome applied
// immediately. Completions are yielded as soon as they are discovered,
// which keeps the sequence productive on infinite branching structures.
func (s *search[T]) run(ctx context.Context, yield func(T, error) bool) {
	for {
		if ctx.Err() != nil {
			var zero T
			yield(zero, nondet.ErrIncomplete)
			return
		}
		p, ok := s.queue.Pop()
		if !ok {
			return
		}
		if !s.apply(p, replay.Run(s.fn, p), yield) {
			return
		}
	}
}

// runParallel replays one BFS level at a time across up to workers
// goroutines. Outcomes are applied in level order on this goroutine, so
// results keep the sequential order and guard bookkeeping stays
// single-threaded. Concurrent replay is safe because paths are immutable
// and replays share no engine state; the computation itself must be
// reentrant.
func (s *search[T]) runParallel(ctx context.Context, workers int, yield func(T, error) bool) {
	for {
		if ctx.Err() != nil {
			var zero T
			yield(zero, nondet.ErrIncomplete)
			return
		}
		batch := s.queue.PopRun()
		if len(batch) == 0 {
			return
		}
		outcomes := make([]replay.Outcome[T], len(batch))
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for i, p := range batch {
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				outcomes[i] = replay.Run(s.fn, p)
				<-sem
			}()
		}
		wg.Wait()
		for i, p := range batch {
			if !s.apply(p, outcomes[i], yield) {
				return
			}
		}
	}
}

// apply folds one outcome into the search state. It reports false when
// iteration must stop, either because the consumer broke out or because
// the computation failed.
func (s *search[T]) apply(p nondet.Path, out replay.Outcome[T], yield func(T, error) bool) bool {
	s.tracer.Trace(position{path: p, kind: out.Kind})
	switch out.Kind {
	case nondet.OutcomeCompleted:
		return yield(out.Value, nil)
	case nondet.OutcomePruned:
		s.release(p, out.Guard)
	case nondet.OutcomeSuspended:
		for i := 0; i < out.Options; i++ {
			s.queue.Push(p.Extend(i))
		}
		if out.Guard >= 0 {
			if g := s.guards[guardKey(p, out.Guard)]; g != nil {
				// the single branch at p became out.Options branches
				g.live += out.Options - 1
			}
		}
	case nondet.OutcomeGuarded:
		s.queue.Push(p.Extend(0))
		s.guards[p.String()] = &guardState{live: 1}
	case nondet.OutcomeFailed:
		var zero T
		yield(zero, out.Err)
		return false
	}
	return true
}

// release records that the branch at p pruned. When the innermost guard
// over it runs out of live branches, its fallback path is enqueued; the
// fallback's own prunes attribute to the enclosing guard on their own
// replays, so exhaustion cascades outward without extra bookkeeping.
func (s *search[T]) release(p nondet.Path, guard int) {
	if guard < 0 {
		return
	}
	g := s.guards[guardKey(p, guard)]
	if g == nil {
		return
	}
	g.live--
	if g.live == 0 && !g.pushed {
		g.pushed = true
		s.queue.Push(p[:guard].Extend(1))
	}
}

func guardKey(p nondet.Path, guard int) string {
	return p[:guard].String()
}

type position struct {
	path nondet.Path
	kind nondet.OutcomeKind
}

func (p position) Path() nondet.Path           { return p.path }
func (p position) Outcome() nondet.OutcomeKind { return p.kind }
