// Package nondet defines the data model shared by the nondeterministic
// solver and its clients: candidate paths, the Context handed to a
// computation on every replay, outcome kinds, and the error taxonomy.
//
// A nondeterministic computation can at any point choose among several
// branches of execution. The solver evaluates every branch, breadth first.
// Branches that cannot solve the problem are pruned; branches that return
// normally contribute a result.
//
// For example, a maze walker:
//
//	func mouse(maze *Maze) nondet.Computation[[]Step] {
//		return func(ctx nondet.Context) ([]Step, error) {
//			var route []Step
//			pos := maze.Start()
//			for {
//				if maze.IsExit(pos) {
//					return route, nil
//				}
//				if !maze.IsValid(pos) {
//					ctx.Prune()
//				}
//				maze.Visit(pos)
//				step := nondet.Choose(ctx, []Step{Left, Right, Forward})
//				route = append(route, step)
//				pos = pos.Move(step)
//			}
//		}
//	}
//
//	for route, err := range solver.Solve(context.Background(), mouse(maze)) {
//		...
//	}
//
// The engine restarts the computation from scratch for every candidate
// path, feeding it the recorded choices in order. A computation must
// therefore be deterministic: given the same answers to the same choices,
// it must request the same choices again.
package nondet
