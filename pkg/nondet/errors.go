package nondet

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned when the search is cancelled before the
// frontier is exhausted. Results yielded before cancellation remain valid.
var ErrIncomplete = errors.New("cancelled before all solutions were found")

// EmptyChoiceSetError reports a call to ChooseIndex with no alternatives.
// This is a contract violation by the computation and aborts the search.
type EmptyChoiceSetError struct {
	Path   Path
	Cursor int
}

func (e *EmptyChoiceSetError) Error() string {
	return fmt.Sprintf("choice %d of path %q offers no alternatives", e.Cursor, e.Path)
}

// IndexOutOfRangeError reports a recorded choice index that is no longer
// valid against the alternatives offered on replay. It indicates a
// nondeterministic computation and aborts the search.
type IndexOutOfRangeError struct {
	Path    Path
	Cursor  int
	Index   int
	Options int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("replay of path %q recorded index %d at choice %d but only %d alternatives were offered",
		e.Path, e.Index, e.Cursor, e.Options)
}

// DivergentReplayError reports a replay that returned before consuming
// every recorded choice. It indicates a nondeterministic computation and
// aborts the search.
type DivergentReplayError struct {
	Path     Path
	Consumed int
}

func (e *DivergentReplayError) Error() string {
	return fmt.Sprintf("replay of path %q consumed only %d of %d recorded choices",
		e.Path, e.Consumed, len(e.Path))
}

// UnmatchedElseNoneError reports a call to ElseNone without a prior IfAny.
type UnmatchedElseNoneError struct {
	Path Path
}

func (e *UnmatchedElseNoneError) Error() string {
	return fmt.Sprintf("replay of path %q called ElseNone without a matching IfAny", e.Path)
}

// PanicError wraps a panic raised by the computation. The search stops;
// the panic is not re-raised.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("computation panicked: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
