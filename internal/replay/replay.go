// Package replay re-executes a computation against a recorded path to
// discover its next outcome. The computation runs from its start on every
// call; Prune and suspension are typed panics recovered here, never past
// this boundary.
package replay

import (
	"runtime/debug"

	"github.com/operator-framework/nondet/pkg/nondet"
)

// Outcome is the result of replaying one path.
type Outcome[T any] struct {
	Kind nondet.OutcomeKind

	// Value is set when Kind is OutcomeCompleted.
	Value T

	// Options is the number of alternatives at the branch point when Kind
	// is OutcomeSuspended.
	Options int

	// Guard is the cursor position of the innermost guarded block still
	// open where the replay terminated, or -1. The solver uses it to
	// attribute live-branch counts to IfAny guards.
	Guard int

	// Err is set when Kind is OutcomeFailed.
	Err error
}

// Run replays fn against path and reports the outcome. A suspension or a
// prune raised below arbitrary call depth inside fn is converted into an
// Outcome here; any other panic is wrapped in a PanicError.
func Run[T any](fn nondet.Computation[T], path nondet.Path) (out Outcome[T]) {
	d := &driver{path: path}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch sig := r.(type) {
		case suspendSignal:
			out = Outcome[T]{Kind: nondet.OutcomeSuspended, Options: sig.options, Guard: sig.guard}
		case guardSignal:
			out = Outcome[T]{Kind: nondet.OutcomeGuarded, Guard: -1}
		case pruneSignal:
			out = Outcome[T]{Kind: nondet.OutcomePruned, Guard: sig.guard}
		case contractSignal:
			out = Outcome[T]{Kind: nondet.OutcomeFailed, Err: sig.err, Guard: -1}
		default:
			out = Outcome[T]{
				Kind:  nondet.OutcomeFailed,
				Err:   &nondet.PanicError{Value: r, Stack: debug.Stack()},
				Guard: -1,
			}
		}
	}()

	v, err := fn(d)
	if err != nil {
		return Outcome[T]{Kind: nondet.OutcomeFailed, Err: err, Guard: -1}
	}
	if d.cursor != len(d.path) {
		err := &nondet.DivergentReplayError{Path: d.path, Consumed: d.cursor}
		return Outcome[T]{Kind: nondet.OutcomeFailed, Err: err, Guard: -1}
	}
	return Outcome[T]{Kind: nondet.OutcomeCompleted, Value: v, Guard: -1}
}

// Signals thrown by the driver and recovered in Run. They must never
// escape this package.
type (
	suspendSignal  struct{ options, guard int }
	guardSignal    struct{}
	pruneSignal    struct{ guard int }
	contractSignal struct{ err error }
)

// driver implements nondet.Context for a single replay.
type driver struct {
	path   nondet.Path
	cursor int
	guards []guardFrame
}

// guardFrame tracks one IfAny block entered during this replay.
// fallback is true when the recorded slot selected the ElseNone branch.
type guardFrame struct {
	pos      int
	fallback bool
}

func (d *driver) ChooseIndex(n int) int {
	if n < 1 {
		panic(contractSignal{err: &nondet.EmptyChoiceSetError{Path: d.path, Cursor: d.cursor}})
	}
	if d.cursor < len(d.path) {
		index := d.path[d.cursor]
		if index >= n {
			panic(contractSignal{err: &nondet.IndexOutOfRangeError{
				Path:    d.path,
				Cursor:  d.cursor,
				Index:   index,
				Options: n,
			}})
		}
		d.cursor++
		return index
	}
	panic(suspendSignal{options: n, guard: d.activeGuard()})
}

func (d *driver) Prune() {
	panic(pruneSignal{guard: d.activeGuard()})
}

func (d *driver) IfAny() bool {
	if d.cursor < len(d.path) {
		slot := d.path[d.cursor]
		if slot > 1 {
			panic(contractSignal{err: &nondet.IndexOutOfRangeError{
				Path:    d.path,
				Cursor:  d.cursor,
				Index:   slot,
				Options: 2,
			}})
		}
		d.guards = append(d.guards, guardFrame{pos: d.cursor, fallback: slot == 1})
		d.cursor++
		return slot == 0
	}
	panic(guardSignal{})
}

func (d *driver) ElseNone() bool {
	if len(d.guards) == 0 {
		panic(contractSignal{err: &nondet.UnmatchedElseNoneError{Path: d.path}})
	}
	frame := d.guards[len(d.guards)-1]
	d.guards = d.guards[:len(d.guards)-1]
	return frame.fallback
}

// activeGuard returns the cursor position of the innermost IfAny block
// whose guarded branch is executing, or -1. Fallback frames are skipped:
// no client code runs between a fallback IfAny and its ElseNone.
func (d *driver) activeGuard() int {
	for i := len(d.guards) - 1; i >= 0; i-- {
		if !d.guards[i].fallback {
			return d.guards[i].pos
		}
	}
	return -1
}
