package dimacs

import (
	"github.com/operator-framework/nondet/pkg/nondet"
)

// Satisfy returns a computation that searches for satisfying assignments
// of d, one truth value per variable in order. A branch is pruned as soon
// as some clause has every literal assigned false, so conflicts are
// detected before the assignment is complete.
func Satisfy(d *Dimacs) nondet.Computation[[]bool] {
	return func(ctx nondet.Context) ([]bool, error) {
		assigned := make([]bool, 0, d.NumVariables())
		for v := 1; v <= d.NumVariables(); v++ {
			value := nondet.Choose(ctx, []bool{false, true})
			assigned = append(assigned, value)
			if falsified(d.Clauses(), assigned) {
				ctx.Prune()
			}
		}
		return assigned, nil
	}
}

// falsified reports whether any clause has all its literals assigned and
// none of them true. Literals beyond the assigned prefix leave the clause
// undecided.
func falsified(clauses [][]int, assigned []bool) bool {
	for _, clause := range clauses {
		decided := true
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if v > len(assigned) {
				decided = false
				break
			}
			if (lit > 0) == assigned[v-1] {
				decided = false
				break
			}
		}
		if decided {
			return true
		}
	}
	return false
}
