package nondet

// Context is the interface between a running computation and the engine
// replaying it. A fresh Context is created for every replay; computations
// must not retain one beyond a single invocation.
type Context interface {
	// ChooseIndex picks one of n alternatives and returns its index in
	// [0, n). During the recorded prefix of a replay it returns the
	// recorded index; at the frontier it suspends the computation so the
	// solver can explore all n alternatives. ChooseIndex does not return
	// in that case. Calling it with n < 1 aborts the whole search with an
	// EmptyChoiceSetError.
	ChooseIndex(n int) int

	// Prune abandons the current branch as invalid. It never returns.
	Prune()

	// IfAny opens a guarded block. The block's branches are explored as
	// usual; the matching ElseNone block runs only if every branch opened
	// inside the guarded block ended in Prune.
	//
	//	if ctx.IfAny() {
	//		// explore choices, prune failures
	//	}
	//	if ctx.ElseNone() {
	//		// runs only if all of the above pruned
	//	}
	//
	// Every IfAny must be paired with an ElseNone.
	IfAny() bool

	// ElseNone closes the innermost guarded block opened by IfAny and
	// reports whether its fallback should run.
	ElseNone() bool
}

// Computation is a client function evaluated under the solver. Extra
// inputs are closed over. Returning a non-nil error aborts the entire
// search; use Context.Prune to discard just the current branch.
type Computation[T any] func(ctx Context) (T, error)

// Choose picks one element of options. It is the value-level form of
// Context.ChooseIndex.
func Choose[E any](ctx Context, options []E) E {
	return options[ctx.ChooseIndex(len(options))]
}
