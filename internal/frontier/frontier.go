// Package frontier holds the paths awaiting replay. The FIFO discipline
// is what produces breadth-first exploration: every path of length k is
// dequeued before any path of length k+1 that its level produced.
package frontier

import "github.com/operator-framework/nondet/pkg/nondet"

// Queue is a FIFO of candidate paths. It performs no deduplication;
// computations wanting memoization must do it themselves.
type Queue struct {
	items []nondet.Path
	head  int
}

func New() *Queue {
	return &Queue{}
}

func (q *Queue) Push(p nondet.Path) {
	q.items = append(q.items, p)
}

// Pop removes and returns the oldest path. The second return value is
// false when the queue is empty.
func (q *Queue) Pop() (nondet.Path, bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	p := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return p, true
}

// PopRun removes the maximal run of equal-length paths at the head of the
// queue. With breadth-first enqueueing this is one BFS level, which makes
// it the unit of parallel replay.
func (q *Queue) PopRun() []nondet.Path {
	first, ok := q.Pop()
	if !ok {
		return nil
	}
	run := []nondet.Path{first}
	for q.head < len(q.items) && len(q.items[q.head]) == len(first) {
		p, _ := q.Pop()
		run = append(run, p)
	}
	return run
}

func (q *Queue) Len() int {
	return len(q.items) - q.head
}
