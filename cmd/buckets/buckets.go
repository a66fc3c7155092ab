package buckets

import (
	"fmt"

	"github.com/operator-framework/nondet/pkg/nondet"
)

// DieHard returns a computation solving the water-jug puzzle: starting
// with empty jugs of the given sizes, reach exactly target in one jug by
// repeatedly emptying a jug, filling it, or pouring one into another.
// The result is the move log. States already seen along the branch are
// pruned, so every solution is cycle free.
func DieHard(target int, sizes ...int) nondet.Computation[[]string] {
	return func(ctx nondet.Context) ([]string, error) {
		levels := make([]int, len(sizes))
		var moves []string
		done := false

		put := func(jug, value int) {
			if done {
				return
			}
			levels[jug] = value
			if value == target {
				moves = append(moves, fmt.Sprintf("done %d == %d", sizes[jug], target))
				done = true
			}
		}

		visited := map[string]bool{fmt.Sprint(levels): true}
		for !done {
			switch ctx.ChooseIndex(3) {
			case 0: // empty
				jug := ctx.ChooseIndex(len(sizes))
				moves = append(moves, fmt.Sprintf("empty %d", sizes[jug]))
				put(jug, 0)
			case 1: // fill
				jug := ctx.ChooseIndex(len(sizes))
				moves = append(moves, fmt.Sprintf("fill %d", sizes[jug]))
				put(jug, sizes[jug])
			case 2: // pour
				from := ctx.ChooseIndex(len(sizes))
				to := ctx.ChooseIndex(len(sizes))
				if to == from {
					ctx.Prune()
				}
				poured := min(levels[from], sizes[to]-levels[to])
				moves = append(moves, fmt.Sprintf("pour %d from %d to %d", poured, sizes[from], sizes[to]))
				put(from, levels[from]-poured)
				put(to, levels[to]+poured)
			}
			if done {
				break
			}
			state := fmt.Sprint(levels)
			if visited[state] {
				ctx.Prune()
			}
			visited[state] = true
		}
		return moves, nil
	}
}
